package app

import (
	"github.com/vcrobe/nojs-social/internal/app/layouts"
	"github.com/vcrobe/nojs-social/internal/app/pages"
	"github.com/vcrobe/nojs-social/router"
	"github.com/vcrobe/nojs-social/runtime"
)

const (
	HomePath     = "/"
	LoginPath    = "/login"
	ProfilePath  = "/profile"
	RegisterPath = "/register"
)

// Routes builds the application route table. Every call returns a new,
// independent table with the same entries in the same order.
func Routes() *router.Table {
	return router.NewTable(
		router.Page(HomePath, HomePage_TypeID, func() runtime.Component { return &pages.Home{} }),
		router.Page(LoginPath, LoginPage_TypeID, func() runtime.Component { return &pages.Login{} }),
		router.Page(ProfilePath, ProfilePage_TypeID, func() runtime.Component { return &pages.Profile{} }),
		router.Page(RegisterPath, RegisterPage_TypeID, func() runtime.Component { return &pages.Register{} }),
	)
}

// Navigation lists the links shown by the main layout.
func Navigation() []layouts.NavItem {
	return []layouts.NavItem{
		{Path: HomePath, Label: "Home"},
		{Path: LoginPath, Label: "Login"},
		{Path: ProfilePath, Label: "Profile"},
		{Path: RegisterPath, Label: "Register"},
	}
}
