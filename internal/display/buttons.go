package display

import "gones/internal/input"

func setButtons(pad *input.Controller, up, down, left, right, a, b, start, sel bool) {
	pad.SetButton(input.ButtonUp, up)
	pad.SetButton(input.ButtonDown, down)
	pad.SetButton(input.ButtonLeft, left)
	pad.SetButton(input.ButtonRight, right)
	pad.SetButton(input.ButtonA, a)
	pad.SetButton(input.ButtonB, b)
	pad.SetButton(input.ButtonStart, start)
	pad.SetButton(input.ButtonSelect, sel)
}
