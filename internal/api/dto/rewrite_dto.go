package dto

// RewriteDTO 改写请求
type RewriteDTO struct {
	Text string `json:"text" validate:"required"`
}

// RewriteRespDTO 改写返回 恒为3个候选
type RewriteRespDTO struct {
	Variants []string `json:"variants"`
}
