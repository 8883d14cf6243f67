package domain

type CtxKey string

const (
	KeyRequestID CtxKey = "RequestID"
)

// RequestIDFrom returns the request id carried by ctx, or "".
func RequestIDFrom(ctx interface{ Value(any) any }) string {
	id, _ := ctx.Value(KeyRequestID).(string)
	return id
}
