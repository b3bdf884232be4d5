package task

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rcdrguez/quickquote-agent-demo/global"
	"github.com/rcdrguez/quickquote-agent-demo/utils"
)

// CleanUpLogs 删除超过保留天数的按日日志 (run.log.2006-01-02 / gin.log.2006-01-02)
func (m *Manager) CleanUpLogs() error {
	retentionDays := global.Config.LogRetentionDays
	if retentionDays == 0 {
		global.Log.Info("日志清理功能已禁用 (log_retention_days = 0)")
		return nil
	}

	now := time.Now().In(global.Tz)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, global.Tz)
	cutoff := today.AddDate(0, 0, -int(retentionDays))

	var dirs []string
	for _, p := range []string{global.Config.RunLogPath, global.Config.GinLogPath} {
		if p == "" {
			continue
		}
		if dir := filepath.Dir(p); utils.InSlice(dirs, dir) < 0 {
			dirs = append(dirs, dir)
		}
	}

	deleted := 0
	var failed []string
	for _, dir := range dirs {
		n, errs, err := removeLogsBefore(dir, cutoff)
		if err != nil {
			return fmt.Errorf("遍历日志目录 '%s' 失败: %w", dir, err)
		}
		deleted += n
		failed = append(failed, errs...)
	}

	if len(failed) > 0 {
		return fmt.Errorf("日志清理过程中发生错误: %s", strings.Join(failed, "; "))
	}
	global.Log.Infof("日志清理任务完成，共删除 %d 个文件", deleted)
	return nil
}

func removeLogsBefore(dir string, cutoff time.Time) (int, []string, error) {
	deleted := 0
	var failed []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		fileDate, ok := utils.ParseDateFromLogFileName(d.Name(), global.Tz)
		if !ok || !fileDate.Before(cutoff) {
			return nil
		}
		if err := os.Remove(path); err != nil {
			msg := fmt.Sprintf("删除旧日志文件 %s 失败: %v", path, err)
			global.Log.Error(msg)
			failed = append(failed, msg)
			return nil
		}
		global.Log.Infof("已删除旧日志文件: %s", path)
		deleted++
		return nil
	})
	return deleted, failed, err
}
