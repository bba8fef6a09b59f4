package dto

// Response 统一返回结构，HTTP 状态码恒为 200
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// IndexDTO 有序列表中的位置
type IndexDTO struct {
	Index     int    `json:"index" binding:"min=0"`
	Direction string `json:"direction" binding:"required,oneof=up down"`
}
