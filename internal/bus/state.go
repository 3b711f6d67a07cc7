package bus

// RAM returns the bus's internal 2 KiB RAM for snapshotting. The array
// is returned by value, so the result is an independent copy.
func (b *Bus) RAM() [0x0800]uint8 { return b.ram }

// LoadRAM restores internal RAM from a snapshot taken by RAM.
func (b *Bus) LoadRAM(ram [0x0800]uint8) { b.ram = ram }
