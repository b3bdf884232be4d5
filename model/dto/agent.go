package dto

type InterpretRequest struct {
	Text string `json:"text" binding:"required"`
}

// EmptyArgs 无参工具
type EmptyArgs struct{}
