package initialize

import (
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/rcdrguez/quickquote-agent-demo/dao"
	"github.com/rcdrguez/quickquote-agent-demo/global"
	"github.com/rcdrguez/quickquote-agent-demo/model/enum"
	"github.com/rcdrguez/quickquote-agent-demo/utils"
)

type mysql struct{}
type sqlite struct{}

// dbStart 根据配置连接数据库并建表
func (i *Initializer) dbStart() error {
	var dbRes interface {
		connect() error
		version() string
	}

	switch global.Config.Database.Type {
	case string(enum.MYSQL):
		dbRes = &mysql{}
	default:
		dbRes = &sqlite{}
	}

	if err := dbRes.connect(); err != nil {
		return err
	}
	return dao.App.Migrate()
}

// dbClose 关闭数据库连接
func (i *Initializer) dbClose() error {
	if dao.DB != nil {
		return dao.DB.Close()
	}
	return nil
}

func (s *sqlite) connect() error {
	var err error
	path := global.Config.Database.SqlitePath

	if path != ":memory:" {
		if err = utils.Mkdir(path); err != nil {
			return fmt.Errorf("创建数据库目录失败[d8sq0l]: %w", err)
		}
	}
	if dao.DB, err = sqlx.Open(string(enum.SQLITE), path); err != nil {
		return fmt.Errorf("数据库连接失败: %w", err)
	}
	if err = dao.DB.Ping(); err != nil {
		return fmt.Errorf("数据库连接失败: %w", err)
	}

	if path == ":memory:" {
		// 内存库每个连接各自独立
		dao.DB.SetMaxOpenConns(1)
	} else {
		dao.DB.SetMaxOpenConns(16)
		dao.DB.SetMaxIdleConns(8)
	}
	dao.DB.SetConnMaxLifetime(time.Minute * 5)

	for _, pragma := range []string{"PRAGMA journal_mode = WAL", "PRAGMA busy_timeout = 10000", "PRAGMA synchronous = NORMAL"} {
		if _, err = dao.DB.Exec(pragma); err != nil {
			return fmt.Errorf("数据库设置失败: %w", err)
		}
	}

	global.Log.Infof("%s版本: %s; 地址: %s", global.Config.Database.Type, s.version(), path)
	return nil
}

func (m *mysql) connect() error {
	var err error
	cfg := global.Config.Database
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local", cfg.MysqlUsername, cfg.MysqlPassword, cfg.MysqlHost, cfg.MysqlPort, cfg.MysqlDbname)

	if dao.DB, err = sqlx.Connect(string(enum.MYSQL), dsn); err != nil {
		return fmt.Errorf("数据库连接失败[rwbhe3]: @tcp(%s:%s)/%s\n%w", cfg.MysqlHost, cfg.MysqlPort, cfg.MysqlDbname, err)
	}

	dao.DB.SetMaxOpenConns(16)
	dao.DB.SetMaxIdleConns(8)
	dao.DB.SetConnMaxLifetime(time.Minute * 5)

	global.Log.Infof("%s版本: %s; 地址: @tcp(%s:%s)/%s", cfg.Type, m.version(), cfg.MysqlHost, cfg.MysqlPort, cfg.MysqlDbname)
	return nil
}

func (*sqlite) version() (t string) {
	if err := dao.DB.Get(&t, `SELECT sqlite_version()`); err != nil {
		global.Log.Warnf("查询sqlite版本失败: %v", err)
	}
	return
}

func (*mysql) version() (t string) {
	if err := dao.DB.Get(&t, `SELECT version()`); err != nil {
		global.Log.Warnf("查询mysql版本失败: %v", err)
	}
	return
}
