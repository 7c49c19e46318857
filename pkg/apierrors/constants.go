package apierrors

// Error codes carried in the "error" field of the response envelope.
const (
	CodeValidation     = "VALIDATION_ERROR"
	CodeAuthentication = "AUTHENTICATION_ERROR"
	CodeTokenExpired   = "TOKEN_EXPIRED"
	CodeInvalidToken   = "INVALID_TOKEN"
	CodeAuthRequired   = "AUTHORIZATION_REQUIRED"
	CodeForbidden      = "FORBIDDEN"
	CodeNotFound       = "NOT_FOUND"
	CodeConflict       = "CONFLICT"
	CodeInternal       = "INTERNAL_ERROR"
)

// Translation message keys.
const (
	MsgInvalidID      = "invalidID"
	MsgInternalError  = "internalError"
	MsgForbidden      = "forbidden"
	MsgAuthRequired   = "authorizationRequired"
	MsgInvalidToken   = "invalidToken"
	MsgTokenExpired   = "tokenExpired"
	MsgAdminOnly      = "adminOnly"

	MsgInvalidAuthPayload = "invalidAuthPayload"
	MsgInvalidCredentials = "invalidCredentials"
	MsgEmailTaken         = "emailTaken"
	MsgUserNotFound       = "userNotFound"
	MsgFailListUsers      = "failListUsers"

	MsgProjectNotFound       = "projectNotFound"
	MsgInvalidProjectPayload = "invalidProjectPayload"
	MsgParentCycle           = "projectParentCycle"
	MsgOwnerNotRemovable     = "ownerNotRemovable"
	MsgFailListProjects      = "failListProjects"
	MsgFailCreateProject     = "failCreateProject"
	MsgFailUpdateProject     = "failUpdateProject"
	MsgFailDeleteProject     = "failDeleteProject"
	MsgFailListMembers       = "failListMembers"
	MsgFailAddMember         = "failAddMember"
	MsgFailRemoveMember      = "failRemoveMember"

	MsgTaskNotFound       = "taskNotFound"
	MsgInvalidTaskPayload = "invalidTaskPayload"
	MsgFailListTasks      = "failListTasks"
	MsgFailCreateTask     = "failCreateTask"
	MsgFailUpdateTask     = "failUpdateTask"
	MsgFailDeleteTask     = "failDeleteTask"

	MsgCommentNotFound       = "commentNotFound"
	MsgInvalidCommentPayload = "invalidCommentPayload"
	MsgInvalidCommentAnchor  = "invalidCommentAnchor"
	MsgFailListComments      = "failListComments"
	MsgFailCreateComment     = "failCreateComment"
	MsgFailUpdateComment     = "failUpdateComment"
	MsgFailDeleteComment     = "failDeleteComment"

	MsgRoleNotFound        = "roleNotFound"
	MsgRoleNameTaken       = "roleNameTaken"
	MsgInvalidRolePayload  = "invalidRolePayload"
	MsgSettingNotFound     = "settingNotFound"
	MsgSettingNameTaken    = "settingNameTaken"
	MsgInvalidSettingValue = "invalidSettingValue"
	MsgInvalidUserPayload  = "invalidUserPayload"
	MsgFailListActivity    = "failListActivity"
)
