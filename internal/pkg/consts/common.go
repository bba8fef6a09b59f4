package consts

const (
	MimePrefixImage = "image"
	MimePrefixVideo = "video"
)

const (
	DefaultAvatarURL = "default_avatar.png"
)

// 角色
const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)
