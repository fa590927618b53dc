package core

import "errors"

// DomainError 是领域层的统一错误类型。
//
// 设计原则：
//   - 所有领域层错误都使用此类型
//   - 提供错误代码（Code）和消息（Message）
//   - 可包装底层错误（Err），支持 errors.Is / errors.As
//
// 使用场景：
//   - Ingest 错误：PARSE_ERROR（CSV 格式错误、缺列、类型转换失败）
//   - Web 错误：INVALID_INPUT（未上传文件）
//   - Store 错误：NOT_FOUND
type DomainError struct {
	Code    string // 错误代码（如 "PARSE_ERROR", "INVALID_INPUT"）
	Message string // 错误消息
	Module  string // 模块名称（如 "ingest", "web", "store"）
	Err     error  // 底层错误（可选）
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// IsDomainError 检查错误链上是否存在 DomainError
func IsDomainError(err error) bool {
	return GetDomainError(err) != nil
}

// GetDomainError 获取错误链上的第一个 DomainError，如果不存在则返回 nil
func GetDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	return nil
}

// NewDomainError 创建新的领域错误
func NewDomainError(module, code, message string) *DomainError {
	return &DomainError{
		Module:  module,
		Code:    code,
		Message: message,
	}
}

// WrapDomainError 创建包装底层错误的领域错误
func WrapDomainError(module, code, message string, err error) *DomainError {
	return &DomainError{
		Module:  module,
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// 错误代码常量
const (
	ErrorCodeNotFound      = "NOT_FOUND"      // 资源不存在
	ErrorCodeNotSupported  = "NOT_SUPPORTED"  // 操作不支持
	ErrorCodeInvalidInput  = "INVALID_INPUT"  // 输入无效（如未上传文件）
	ErrorCodeParse         = "PARSE_ERROR"    // 解析失败
	ErrorCodeInvalidConfig = "INVALID_CONFIG" // 配置无效
)

// 模块名称常量
const (
	ModuleIngest   = "ingest"   // CSV 解析
	ModuleMining   = "mining"   // 频繁项集 / 关联规则
	ModuleStore    = "store"    // 存储模块
	ModuleWeb      = "web"      // HTTP 前端
	ModuleConfig   = "config"   // 配置
	ModulePipeline = "pipeline" // 编排
)

// NewParseError 创建 ingest 模块的解析错误。
func NewParseError(message string, err error) *DomainError {
	return WrapDomainError(ModuleIngest, ErrorCodeParse, message, err)
}

// ErrMissingFile 表示请求中没有上传文件（或文件为空）。
var ErrMissingFile = NewDomainError(ModuleWeb, ErrorCodeInvalidInput, "please upload a CSV file")

func hasCode(err error, code string) bool {
	if domainErr := GetDomainError(err); domainErr != nil {
		return domainErr.Code == code
	}
	return false
}

// IsParseError 检查错误是否为 PARSE_ERROR
func IsParseError(err error) bool {
	return hasCode(err, ErrorCodeParse)
}

// IsInvalidInput 检查错误是否为 INVALID_INPUT
func IsInvalidInput(err error) bool {
	return hasCode(err, ErrorCodeInvalidInput)
}

// IsNotFound 检查错误是否为 NOT_FOUND
func IsNotFound(err error) bool {
	return hasCode(err, ErrorCodeNotFound)
}

// IsNotSupported 检查错误是否为 NOT_SUPPORTED
func IsNotSupported(err error) bool {
	return hasCode(err, ErrorCodeNotSupported)
}

// IsInvalidConfig 检查错误是否为 INVALID_CONFIG
func IsInvalidConfig(err error) bool {
	return hasCode(err, ErrorCodeInvalidConfig)
}
