package embedding

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/sashabaranov/go-openai"
)

var ErrEmptyVector = errors.New("向量化服务返回空向量")

type client struct {
	openAIClient *openai.Client
	modelName    string
}

type Service interface {
	// 批量将多个文本转换为向量, 返回顺序与入参一致
	CreateEmbeddings(ctx context.Context, texts []string) ([][]float32, error)
}

func NewClient(openAIClient *openai.Client, modelName string) Service {
	return &client{
		openAIClient: openAIClient,
		modelName:    modelName,
	}
}

// NewOpenAIClient 按兼容 OpenAI 的地址创建客户端
func NewOpenAIClient(baseURL, auth string, timeout time.Duration) *openai.Client {
	config := openai.DefaultConfig(auth)
	if baseURL != "" {
		config.BaseURL = baseURL
	}
	config.HTTPClient = &http.Client{Timeout: timeout}
	return openai.NewClientWithConfig(config)
}

func (c *client) CreateEmbeddings(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	req := openai.EmbeddingRequest{
		Input: texts,
		Model: openai.EmbeddingModel(c.modelName),
	}

	resp, err := c.openAIClient.CreateEmbeddings(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("请求LLM向量化错误[e8wq1z]: %w", err)
	}

	if len(resp.Data) != len(texts) {
		return nil, fmt.Errorf("向量数据不匹配: expected %d, got %d", len(texts), len(resp.Data))
	}

	embeddings := make([][]float32, len(texts))
	for _, data := range resp.Data {
		if data.Index < 0 || data.Index >= len(texts) {
			return nil, fmt.Errorf("向量下标越界: %d", data.Index)
		}
		if len(data.Embedding) == 0 {
			return nil, ErrEmptyVector
		}
		embeddings[data.Index] = data.Embedding
	}

	return embeddings, nil
}
