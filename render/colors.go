package render

// Palette (Tokyo Night)
var (
	RgbBlack      = RGB{0, 0, 0}
	RgbBackground = RGB{26, 27, 38}
	RgbArea       = RGB{31, 35, 53}
	RgbRing       = RGB{59, 66, 97}
	RgbCenter     = RGB{86, 95, 137}
	RgbCardEdge   = RGB{65, 72, 104}
	RgbCardFill   = RGB{36, 40, 59}

	RgbLabel      = RGB{192, 202, 245}
	RgbLabelDim   = RGB{86, 95, 137}
	RgbStep       = RGB{122, 162, 247}
	RgbActiveEdge = RGB{255, 158, 100}
	RgbHoverEdge  = RGB{125, 207, 255}

	RgbStatusBg     = RGB{22, 22, 30}
	RgbStatusText   = RGB{169, 177, 214}
	RgbStatusKey    = RGB{86, 95, 137}
	RgbModeIdle     = RGB{86, 95, 137}
	RgbModeScroll   = RGB{158, 206, 106}
	RgbModePointer  = RGB{125, 207, 255}
	RgbModeDisabled = RGB{247, 118, 142}
	RgbPinned       = RGB{224, 175, 104}

	RgbOverlayBg     = RGB{30, 32, 48}
	RgbOverlayBorder = RGB{122, 162, 247}
	RgbOverlayText   = RGB{192, 202, 245}
)
