package dto

// RegisterDTO 注册
type RegisterDTO struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

// LoginDTO 登录
type LoginDTO struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginRespDTO 登录成功返回不透明令牌
type LoginRespDTO struct {
	ApiToken string `json:"apiToken"`
}

// OkDTO 通用成功返回
type OkDTO struct {
	Ok bool `json:"ok"`
}
