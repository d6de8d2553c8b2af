package handler

type contextKey string

// SubCtxKey carries the session subject extracted from the session cookie.
const SubCtxKey contextKey = "sub"
