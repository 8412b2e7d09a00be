package handler

type ContextKey string

var (
	RoleCtxKey     ContextKey = "role"
	SubCtxKey      ContextKey = "sub"
	MyInfoCtx      ContextKey = "myInfo"
	UserInfoCtx    ContextKey = "userInfo"
	SalonCtx       ContextKey = "salon"
	StylistCtx     ContextKey = "stylist"
	AppointmentCtx ContextKey = "appointment"
	StaffMemberCtx ContextKey = "staffMember"
)
