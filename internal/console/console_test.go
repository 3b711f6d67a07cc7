package console

import (
	"testing"

	"gones/internal/cartdesc"
	"gones/internal/config"
)

func TestNewRejectsMapperNotInAllowList(t *testing.T) {
	desc := &cartdesc.Cartridge{PRGROM: make([]uint8, 0x8000), Mapper: 4}
	cfg := &config.Config{SupportedMappers: []uint8{0}, RAMFill: config.RAMFillZero}
	if _, err := New(desc, cfg); err == nil {
		t.Fatal("expected an error constructing a console with a disallowed mapper")
	}
}

// Scenario 6: end-to-end NMI handling and frame buffer activity over
// ten emulated frames, driven through the CPU/PPU interleave.
func TestTenFrameNMIAndFrameBuffer(t *testing.T) {
	prg := make([]uint8, 0x8000)

	// $8000: wait for the first VBlank flag, enable NMI + rendering,
	// write one non-zero palette entry, then spin forever; the NMI
	// handler at $FFF0 (reached through the vector at $FFFA) increments
	// a zero-page counter.
	code := []uint8{
		0xA9, 0x80, // LDA #$80
		0x8D, 0x01, 0x20, // STA $2001 (emphasis bit 7 only; rendering stays off)
		0x2C, 0x02, 0x20, // loop: BIT $2002
		0x10, 0xFB, // BPL loop (wait for VBlank, STATUS bit 7)
		0xA9, 0x3F, // LDA #$3F
		0x8D, 0x06, 0x20, // STA $2006
		0xA9, 0x00, // LDA #$00
		0x8D, 0x06, 0x20, // STA $2006
		0xA9, 0x16, // LDA #$16
		0x8D, 0x07, 0x20, // STA $2007
		0xA9, 0x80, // LDA #$80
		0x8D, 0x00, 0x20, // STA $2000 (enable NMI)
		0xA9, 0x1E, // LDA #$1E
		0x8D, 0x01, 0x20, // STA $2001 (show bg + sprites)
	}
	copy(prg[0:], code)
	spinAddr := 0x8000 + len(code)
	prg[len(code)+0] = 0x4C // JMP (self, infinite loop once setup is done)
	prg[len(code)+1] = uint8(spinAddr)
	prg[len(code)+2] = uint8(spinAddr >> 8)

	nmi := []uint8{
		0xE6, 0x10, // INC $10
		0x40, // RTI
	}
	copy(prg[0x7FF0:], nmi) // lands at 0xFFF0

	prg[0x7FFA] = 0xF0 // NMI vector low -> 0xFFF0
	prg[0x7FFB] = 0xFF
	prg[0x7FFC] = 0x00 // reset vector -> 0x8000
	prg[0x7FFD] = 0x80
	prg[0x7FFE] = 0xF0 // IRQ vector, unused here
	prg[0x7FFF] = 0xFF

	desc := &cartdesc.Cartridge{PRGROM: prg, Mirror: cartdesc.MirrorHorizontal}
	nes, err := New(desc, config.Default())
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 10; i++ {
		nes.StepFrame()
	}

	counter := nes.Bus.CPURead(0x0010)
	if counter == 0 {
		t.Error("NMI handler never ran: zero-page counter at $0010 is still 0")
	}

	fb := nes.PPU.FrameBuffer()
	nonZero := false
	for _, v := range fb {
		if v != 0 {
			nonZero = true
			break
		}
	}
	if !nonZero {
		t.Error("frame buffer has no non-zero bytes after 10 frames")
	}
}

// Snapshot/restore must round-trip mid-frame CPU state and bus RAM
// without needing to replay from reset.
func TestSaveStateRoundTrip(t *testing.T) {
	prg := make([]uint8, 0x8000)
	prg[0x7FFC] = 0x00
	prg[0x7FFD] = 0x80

	desc := &cartdesc.Cartridge{PRGROM: prg, Mirror: cartdesc.MirrorHorizontal}
	nes, err := New(desc, config.Default())
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 1000; i++ {
		nes.StepInstruction()
	}
	snapshot := nes.SaveState()

	nes.CPU.A = 0xAB
	nes.Bus.CPUWrite(0x0010, 0xCD)
	for i := 0; i < 50; i++ {
		nes.StepInstruction()
	}

	nes.LoadState(snapshot)

	if nes.CPU.A == 0xAB {
		t.Error("LoadState did not restore CPU.A")
	}
	if got := nes.Bus.CPURead(0x0010); got == 0xCD {
		t.Error("LoadState did not restore bus RAM")
	}
	if nes.CPU.SaveState() != snapshot.CPU {
		t.Error("CPU state after LoadState does not match the snapshot")
	}
}
