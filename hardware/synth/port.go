// This file is part of Consolemix.
//
// Consolemix is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Consolemix is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Consolemix.  If not, see <https://www.gnu.org/licenses/>.

package synth

// RegisterWriter is implemented by synthesizers that accept register
// writes.
type RegisterWriter interface {
	WriteRegister(reg uint16, value uint8)
}

// Register numbers and values that the Port reacts to.
const (
	RegTimerControl = 0x04
	RegExtendedMode = 0x105

	TimerStart = 0x21
	TimerReset = 0x60
)

// StatusTimersExpired is the status register value indicating that both
// timers have expired.
const StatusTimersExpired = 0xc0

// the number of status reads after a timer start before the status register
// reports that the timers have expired
const statusReadThreshold = 200

// Port emulates the address/data/status interface of the synthesizer chip.
//
// The status register does not reflect the real timers of the chip. Music
// drivers start a timer and poll the status register to detect the chip. The
// emulation reports the timers as expired after enough reads have happened
// since the timer was started.
type Port struct {
	chip RegisterWriter

	initialised bool

	// address latches. a write to the high address port selects a register
	// in the second bank (0x100 to 0x1ff) for the next data write only
	address     uint16
	addressHigh uint16
	highLatched bool

	extended bool

	timerStarted bool
	statusReads  int
}

// NewPort is the preferred method of initialisation for the Port type. The
// port ignores all writes until Init() is called.
func NewPort(chip RegisterWriter) *Port {
	return &Port{chip: chip}
}

// Init enables the port and resets all latches.
func (p *Port) Init() {
	*p = Port{chip: p.chip, initialised: true}
}

// Shutdown disables the port.
func (p *Port) Shutdown() {
	p.initialised = false
}

// Extended returns true if the extended register bank has been enabled by
// register 0x105.
func (p *Port) Extended() bool {
	return p.extended
}

// WriteAddress selects a register in the first bank.
func (p *Port) WriteAddress(v uint8) {
	if !p.initialised {
		return
	}
	p.address = uint16(v)
}

// WriteAddressHigh selects a register in the second bank.
func (p *Port) WriteAddressHigh(v uint8) {
	if !p.initialised {
		return
	}
	p.addressHigh = uint16(v) | 0x100
	p.highLatched = true
}

// WriteData writes a value to the most recently selected register.
func (p *Port) WriteData(v uint8) {
	if !p.initialised {
		return
	}

	reg := p.address
	if p.highLatched {
		reg = p.addressHigh
		p.highLatched = false
	}

	switch reg {
	case RegExtendedMode:
		p.extended = v&0x01 == 0x01
	case RegTimerControl:
		switch v {
		case TimerStart:
			p.timerStarted = true
			p.statusReads = 0
		case TimerReset:
			p.timerStarted = false
			p.statusReads = 0
		}
	}

	if p.chip != nil {
		p.chip.WriteRegister(reg, v)
	}
}

// WriteRegister selects a register and writes a value to it.
func (p *Port) WriteRegister(reg uint16, v uint8) {
	if reg >= 0x100 {
		p.WriteAddressHigh(uint8(reg))
	} else {
		p.WriteAddress(uint8(reg))
	}
	p.WriteData(v)
}

// ReadStatus returns the value of the status register.
func (p *Port) ReadStatus() uint8 {
	if p.timerStarted {
		p.statusReads++
		if p.statusReads > statusReadThreshold {
			return StatusTimersExpired
		}
	}
	return 0x00
}
