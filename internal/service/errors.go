package service

import (
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	Forbidden           = 403
	NotFound            = 404
	Conflict            = 409
	InternalServerError = 500
)

var (
	ErrParamInvalid         = errors.New("参数错误")
	ErrUserNotFound         = errors.New("用户不存在")
	ErrUserBan              = errors.New("用户已被封禁")
	ErrUserHasRole          = errors.New("用户已拥有此角色")
	ErrRoleNotFound         = errors.New("角色不存在")
	ErrPasswordMismatch     = errors.New("两次输入的密码不一致")
	ErrTokenInvalid         = errors.New("登录已失效，请重新登录")
	ErrFileNotSupported     = errors.New("不支持的文件类型")
	ErrFileNotExist         = errors.New("文件不存在")
	ErrPostNotFound         = errors.New("帖子不存在")
	ErrPostMediaRequired    = errors.New("至少需要一张图片或一个视频")
	ErrPostTitleRequired    = errors.New("标题不能为空")
	ErrPostTitleTooLong     = errors.New("标题不能超过 100 个单词")
	ErrPostDescTooLong      = errors.New("描述不能超过 1500 个单词")
	ErrPostPrivacyInvalid   = errors.New("可见范围无效")
	ErrFriendSelf           = errors.New("不能添加自己为好友")
	ErrFriendExist          = errors.New("已是好友或对方已发送请求")
	ErrFriendRequestMissing = errors.New("好友请求不存在")
	ErrMetricInvalid        = errors.New("指标无效")
	ErrCursorInvalid        = errors.New("分页游标无效")
	ErrProductNotFound      = errors.New("商品不存在")
	ErrCatalogItemNotFound  = errors.New("目录项不存在")
	ErrVideoNotFound        = errors.New("视频不存在")
	ErrChannelNotFound      = errors.New("频道不存在")
	ErrReportNotFound       = errors.New("举报不存在")
	ErrNotificationNotFound = errors.New("通知不存在")
	ErrTargetUserInvalid    = errors.New("目标用户无效")
	ErrPageNotFound         = errors.New("页面不存在")
	UnauthorizedError       = errors.New("请先登录")
	ForbiddenError          = errors.New("权限不足")
	UnExpectedError         = errors.New("系统异常，请稍后重试")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:         BadRequest,
	ErrUserNotFound:         NotFound,
	ErrUserBan:              Forbidden,
	ErrUserHasRole:          BadRequest,
	ErrRoleNotFound:         NotFound,
	ErrPasswordMismatch:     BadRequest,
	ErrTokenInvalid:         Unauthorized,
	ErrFileNotSupported:     BadRequest,
	ErrFileNotExist:         NotFound,
	ErrPostNotFound:         NotFound,
	ErrPostMediaRequired:    BadRequest,
	ErrPostTitleRequired:    BadRequest,
	ErrPostTitleTooLong:     BadRequest,
	ErrPostDescTooLong:      BadRequest,
	ErrPostPrivacyInvalid:   BadRequest,
	ErrFriendSelf:           BadRequest,
	ErrFriendExist:          Conflict,
	ErrFriendRequestMissing: NotFound,
	ErrMetricInvalid:        BadRequest,
	ErrCursorInvalid:        BadRequest,
	ErrProductNotFound:      NotFound,
	ErrCatalogItemNotFound:  NotFound,
	ErrVideoNotFound:        NotFound,
	ErrChannelNotFound:      NotFound,
	ErrReportNotFound:       NotFound,
	ErrNotificationNotFound: NotFound,
	ErrTargetUserInvalid:    BadRequest,
	ErrPageNotFound:         NotFound,
	UnauthorizedError:       Unauthorized,
	ForbiddenError:          Forbidden,
	UnExpectedError:         InternalServerError,
}
