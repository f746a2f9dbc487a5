package extractor

import (
	"errors"
	"fmt"
)

// 抽取流程的标准错误。单个字段抽取器从不报错（缺失一律退化为零值），
// 错误只会出现在入口处的输入校验上。
var (
	// ErrInvalidInput 输入文本为空或全是空白，无法抽取
	ErrInvalidInput = errors.New("invalid input text")
)

// ExtractError 封装抽取错误及其上下文信息
type ExtractError struct {
	SourceID string // 来源文件名或文档标识
	Op       string // 出错的操作
	BaseErr  error  // 底层错误
	Detail   string // 额外细节
}

// Error 实现error接口
func (e *ExtractError) Error() string {
	msg := fmt.Sprintf("抽取错误 [%s] 操作 '%s'", e.SourceID, e.Op)
	if e.BaseErr != nil {
		msg += fmt.Sprintf(": %v", e.BaseErr)
	}
	if e.Detail != "" {
		msg += fmt.Sprintf(" (%s)", e.Detail)
	}
	return msg
}

// Unwrap 支持errors.Is/As链式判断
func (e *ExtractError) Unwrap() error {
	return e.BaseErr
}

// Is 允许直接与基础错误比较
func (e *ExtractError) Is(target error) bool {
	return errors.Is(e.BaseErr, target)
}

// NewExtractError 创建抽取错误
func NewExtractError(sourceID, op string, baseErr error, detail string) *ExtractError {
	return &ExtractError{
		SourceID: sourceID,
		Op:       op,
		BaseErr:  baseErr,
		Detail:   detail,
	}
}
