package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type theme string

const (
	themeLight theme = "light"
	themeDark  theme = "dark"

	themeCookie    = "theme"
	themeCookieAge = 365 * 24 * 3600
)

func (t theme) toggled() theme {
	if t == themeDark {
		return themeLight
	}
	return themeDark
}

// themeFromRequest reads the theme cookie. Anything unrecognised is light.
func themeFromRequest(c *gin.Context) theme {
	v, err := c.Cookie(themeCookie)
	if err == nil && theme(v) == themeDark {
		return themeDark
	}
	return themeLight
}

func toggleTheme(c *gin.Context) {
	next := themeFromRequest(c).toggled()
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(themeCookie, string(next), themeCookieAge, "/", "", false, true)

	if c.GetHeader("HX-Request") == "true" {
		c.Header("HX-Refresh", "true")
		c.Status(http.StatusNoContent)
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}
