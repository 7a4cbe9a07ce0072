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

// Package dma models the circular transfer that feeds audio samples to the
// output device. The transfer buffer is split into two halves. While one half
// is being played the other half is filled by a Filler. The Buffer raises a
// half transfer event when the first half has been consumed and a transfer
// complete event when the second half has been consumed, and each event asks
// the Filler to refill the half that has just been played.
//
// Output drivers either push halves to the device on their own schedule, by
// calling HalfTransferComplete() and TransferComplete() in alternation, or
// let the device pull bytes with Read().
//
// Fill requests can be masked with Disable() and unmasked with Enable(). A
// fill request that arrives while requests are masked waits until Enable()
// is called. This is the only mutual exclusion between the goroutine that
// services fill requests and the rest of the program.
package dma
