package render

// Scene colors
var (
	RgbBackground = RGB{26, 27, 38} // Tokyo Night background

	RgbBrickFace = RGB{150, 150, 160}
	RgbBrickTop  = RGB{200, 200, 210}
	RgbBrickSeam = RGB{90, 90, 100}

	RgbGem      = RGB{80, 220, 255}
	RgbGemShine = RGB{200, 245, 255}

	RgbSkaterBody  = RGB{255, 165, 0} // Orange
	RgbSkaterBoard = RGB{180, 110, 60}
	RgbSkaterWheel = RGB{220, 220, 220}

	RgbSparkHot  = RGB{255, 255, 200}
	RgbSparkCool = RGB{255, 120, 0}
)

// HUD and menu colors
var (
	RgbHUDTitle = RGB{180, 180, 180}
	RgbHUDValue = RGB{255, 255, 255}

	RgbMenuMessage = RGB{255, 255, 0}
	RgbMenuScore   = RGB{255, 255, 255}
	RgbMenuHint    = RGB{140, 140, 140}
	RgbPaused      = RGB{135, 206, 250} // Light sky blue
)
