package zscroll

// Semigraphics used by boxes and scroll bars.
// Using strings with \u escapes to keep the source ASCII-safe.
const (
	// General Punctuation U+2000-U+206F
	SemigraphicsHorizontalEllipsis = "…" // …

	// Box Drawing U+2500-U+257F
	BoxDrawingsLightHorizontal        = "─" // ─
	BoxDrawingsLightVertical          = "│" // │
	BoxDrawingsLightDownAndRight      = "┌" // ┌
	BoxDrawingsLightDownAndLeft       = "┐" // ┐
	BoxDrawingsLightUpAndRight        = "└" // └
	BoxDrawingsLightUpAndLeft         = "┘" // ┘
	BoxDrawingsLightVerticalAndRight  = "├" // ├
	BoxDrawingsLightVerticalAndLeft   = "┤" // ┤
	BoxDrawingsLightDownAndHorizontal = "┬" // ┬
	BoxDrawingsLightUpAndHorizontal   = "┴" // ┴
	BoxDrawingsLightArcDownAndRight   = "╭" // ╭
	BoxDrawingsLightArcDownAndLeft    = "╮" // ╮
	BoxDrawingsLightArcUpAndLeft      = "╯" // ╯
	BoxDrawingsLightArcUpAndRight     = "╰" // ╰

	// Block Elements U+2580-U+259F
	BlockUpperHalfBlock          = "▀" // ▀
	BlockLowerOneEighthBlock     = "▁" // ▁
	BlockLowerOneQuarterBlock    = "▂" // ▂
	BlockLowerThreeEighthsBlock  = "▃" // ▃
	BlockLowerHalfBlock          = "▄" // ▄
	BlockLowerFiveEighthsBlock   = "▅" // ▅
	BlockLowerThreeQuartersBlock = "▆" // ▆
	BlockLowerSevenEighthsBlock  = "▇" // ▇
	BlockFullBlock               = "█" // █
	BlockLeftSevenEighthsBlock   = "▉" // ▉
	BlockLeftThreeQuartersBlock  = "▊" // ▊
	BlockLeftFiveEighthsBlock    = "▋" // ▋
	BlockLeftHalfBlock           = "▌" // ▌
	BlockLeftThreeEighthsBlock   = "▍" // ▍
	BlockLeftOneQuarterBlock     = "▎" // ▎
	BlockLeftOneEighthBlock      = "▏" // ▏
	BlockRightHalfBlock          = "▐" // ▐
	BlockUpperOneEighthBlock     = "▔" // ▔
	BlockRightOneEighthBlock     = "▕" // ▕

	// Symbols for Legacy Computing U+1FB00-U+1FBFF
	BlockUpperOneQuarterBlock    = "\U0001fb82" // 🮂
	BlockUpperThreeEighthsBlock  = "\U0001fb83" // 🮃
	BlockUpperFiveEighthsBlock   = "\U0001fb84" // 🮄
	BlockUpperThreeQuartersBlock = "\U0001fb85" // 🮅
	BlockUpperSevenEighthsBlock  = "\U0001fb86" // 🮆
	BlockRightOneQuarterBlock    = "\U0001fb87" // 🮇
	BlockRightThreeEighthsBlock  = "\U0001fb88" // 🮈
	BlockRightFiveEighthsBlock   = "\U0001fb89" // 🮉
	BlockRightThreeQuartersBlock = "\U0001fb8a" // 🮊
	BlockRightSevenEighthsBlock  = "\U0001fb8b" // 🮋

	// Geometric Shapes U+25A0-U+25FF
	GeometricBlackUpPointingTriangle    = "▲" // ▲
	GeometricBlackRightPointingTriangle = "▶" // ▶
	GeometricBlackDownPointingTriangle  = "▼" // ▼
	GeometricBlackLeftPointingTriangle  = "◀" // ◀
)
