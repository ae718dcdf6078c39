package render

import "github.com/gdamore/tcell/v2"

// RGB colors for the scene
var (
	rgbSky     = tcell.NewRGBColor(115, 190, 242)
	rgbGround  = tcell.NewRGBColor(139, 90, 43)
	rgbCoin    = tcell.NewRGBColor(255, 215, 0)
	rgbShroom  = tcell.NewRGBColor(220, 40, 40)
	rgbEnemy   = tcell.NewRGBColor(120, 70, 30)
	rgbPlayer  = tcell.NewRGBColor(230, 30, 30)
	rgbPowered = tcell.NewRGBColor(255, 120, 0)
	rgbPole    = tcell.NewRGBColor(240, 240, 240)
	rgbFlag    = tcell.NewRGBColor(30, 160, 60)
	rgbHUD     = tcell.NewRGBColor(20, 20, 20)
)

var (
	styleSky     = tcell.StyleDefault.Background(rgbSky)
	styleGround  = tcell.StyleDefault.Foreground(rgbGround).Background(rgbSky)
	styleCoin    = tcell.StyleDefault.Foreground(rgbCoin).Background(rgbSky).Bold(true)
	styleShroom  = tcell.StyleDefault.Foreground(rgbShroom).Background(rgbSky).Bold(true)
	styleEnemy   = tcell.StyleDefault.Foreground(rgbEnemy).Background(rgbSky).Bold(true)
	stylePlayer  = tcell.StyleDefault.Foreground(rgbPlayer).Background(rgbSky).Bold(true)
	stylePowered = tcell.StyleDefault.Foreground(rgbPowered).Background(rgbSky).Bold(true)
	stylePole    = tcell.StyleDefault.Foreground(rgbPole).Background(rgbSky)
	styleFlag    = tcell.StyleDefault.Foreground(rgbFlag).Background(rgbSky).Bold(true)
	styleHUD     = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(rgbHUD).Bold(true)
	styleText    = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(rgbSky).Bold(true)
	styleDebug   = tcell.StyleDefault.Foreground(tcell.ColorYellow).Background(rgbHUD)
)

// Glyphs
const (
	glyphGround = '█'
	glyphCoin   = 'o'
	glyphShroom = '♣'
	glyphEnemy  = 'M'
	glyphPlayer = '@'
	glyphPole   = '|'
	glyphFlag   = '>'
	glyphInvuln = '.'
)
