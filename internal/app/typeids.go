package app

// Component TypeIDs uniquely identify each component type for the router pivot algorithm.
// Each value must be unique within the application.
// The persistent layout lives in the AppShell, outside every chain, so it has none.
const (
	HomePage_TypeID     uint32 = 200
	LoginPage_TypeID    uint32 = 300
	ProfilePage_TypeID  uint32 = 400
	RegisterPage_TypeID uint32 = 500
)
