package contextkeys

type ContextKey string

const (
	// DBContextKey is the gin context key under which the request-scoped
	// *gorm.DB (the pool, or a transaction in tests) is stored.
	DBContextKey ContextKey = "db"
)
