package constvars

const (
	CreateRefertoSuccessMessage   = "Successfully created referto"
	UpdateRefertoSuccessMessage   = "Successfully updated referto"
	DeleteRefertoSuccessMessage   = "Successfully deleted referto"
	GetRefertoSuccessMessage      = "Successfully retrieved referto"
	GetRefertiSuccessMessage      = "Successfully retrieved referti"
	GetUsersSuccessMessage        = "Successfully retrieved users"
	GetUserProfileSuccessMessage  = "Successfully retrieved user profile"
	UpdateUserProfileSuccessMsg   = "Successfully updated user profile"
	DisableUserSuccessMessage     = "Successfully disabled user"
	EnableUserSuccessMessage      = "Successfully enabled user"
	ResponseUnknown               = "unknown"
)
