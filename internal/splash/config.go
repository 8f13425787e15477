package splash

import "github.com/glebschkv/phone-pet-paradise/internal/render"

// Canvas size, the iPhone 14 Pro Max native resolution. Everything renders
// at this 3x size once; 2x and 1x come from downsampling.
const (
	Width  = 1290
	Height = 2796
)

// Layout constants in physical pixels. One logical point is three pixels.
const (
	gradientMidFrac = 0.4

	glowCenterYFrac = 0.30
	glowRadius      = 450
	glowMaxAlpha    = 80
	glowBlurSigma   = 60

	scanlineStep  = 4
	scanlineAlpha = 2

	iconSize         = 216 // 72pt
	iconCornerRadius = 48  // 16pt
	iconYFrac        = 0.34
	iconShadowMargin = 30
	iconShadowSigma  = 20

	titleSizePx         = 156
	titleSpacing        = 24 // 8pt letter spacing
	titleGap            = 60 // below the icon
	titleGlowWideSigma  = 30
	titleGlowWideAlpha  = 100
	titleGlowTightSigma = 12
	titleGlowTightAlpha = 140

	taglineSizePx = 36
	taglineGap    = 36 // below the title
	taglineAlpha  = 153

	barWidth          = 540 // 180pt
	barHeight         = 18  // 6pt
	barCornerRadius   = 9
	barGap            = 120 // below the tagline
	barFillFrac       = 0.3
	barGlowSigma      = 8
	barGlowMargin     = 10
	trackFillAlpha    = 20
	trackOutlineAlpha = 51
	trackOutlineWidth = 2
)

const (
	titleText   = "NOMO"
	taglineText = "FOCUS  ·  GROW  ·  COLLECT"
)

// Input and output locations relative to the project root, plus the system
// fonts the wordmark is set in.
const (
	IconRelPath   = "public/app-icon.png"
	OutputRelPath = "ios/App/App/Assets.xcassets/LaunchSplash.imageset"

	boldFontPath    = "/usr/share/fonts/truetype/liberation/LiberationSans-Bold.ttf"
	regularFontPath = "/usr/share/fonts/truetype/liberation/LiberationSans-Regular.ttf"
)

var iconShadowColor = render.WithAlpha(render.Violet, 60)
