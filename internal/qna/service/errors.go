package service

import "github.com/scholarhub/backend/internal/qna/domain"

// User-facing errors. The message is exactly what ends up in the response
// envelope; the wrapped kind picks the HTTP status at the boundary.
var (
	ErrTitleContentRequired = domain.E(domain.ErrValidation, "标题和内容不能为空")
	ErrQuestionIDRequired   = domain.E(domain.ErrValidation, "问题id不能为空")
	ErrQuestionNotFound     = domain.E(domain.ErrNotFound, "问题不存在")
	ErrQuestionModifyDenied = domain.E(domain.ErrForbidden, "只能修改自己的问题")
	ErrQuestionDeleteDenied = domain.E(domain.ErrForbidden, "只能删除自己的问题")

	ErrAnswerInputRequired = domain.E(domain.ErrValidation, "问题id和回答内容不能为空")
	ErrAnswerIDRequired    = domain.E(domain.ErrValidation, "回答id不能为空")
	ErrAnswerNotFound      = domain.E(domain.ErrNotFound, "回答不存在")
	ErrAnswerModifyDenied  = domain.E(domain.ErrForbidden, "只能修改自己的回答")
	ErrAnswerDeleteDenied  = domain.E(domain.ErrForbidden, "只能删除自己的回答")

	ErrMessageIDRequired = domain.E(domain.ErrValidation, "消息id不能为空")
	ErrMessageNotFound   = domain.E(domain.ErrNotFound, "消息不存在")

	ErrEntityIDRequired  = domain.E(domain.ErrValidation, "请给出id")
	ErrUnknownEntityType = domain.E(domain.ErrValidation, "未知的实体类型")

	ErrUsernameRequired    = domain.E(domain.ErrValidation, "用户名不能为空")
	ErrAlreadyBootstrapped = domain.E(domain.ErrForbidden, "服务已初始化")
	ErrBadBootstrapToken   = domain.E(domain.ErrForbidden, "初始化令牌无效")
)
