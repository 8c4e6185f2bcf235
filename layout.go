package klib

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Layout describes the target's memory map: where RAM lives, how much of it
// the heap may claim, and where the MMIO devices sit. It replaces the
// generated-header device configuration of the original runtime with plain
// data.
type Layout struct {
	MemoryBase uint64 `yaml:"memory_base"`
	MemorySize uint64 `yaml:"memory_size"`
	HeapSize   uint64 `yaml:"heap_size"`
	UARTBase   uint64 `yaml:"uart_base"`
	TimerBase  uint64 `yaml:"timer_base"`
}

// DefaultLayout mirrors the shipped device description: 128 MiB of RAM at
// 0x8000_0000, a 4 KiB heap, UART at 0x1000_0000, timer at 0x1000_1000.
func DefaultLayout() Layout {
	return Layout{
		MemoryBase: 0x8000_0000,
		MemorySize: 0x0800_0000,
		HeapSize:   4096,
		UARTBase:   0x1000_0000,
		TimerBase:  0x1000_1000,
	}
}

// ParseLayout decodes a YAML device description. Fields absent from the
// document keep their [DefaultLayout] values. The decoded layout is
// validated before it is returned.
func ParseLayout(data []byte) (Layout, error) {
	l := DefaultLayout()
	if err := yaml.Unmarshal(data, &l); err != nil {
		return Layout{}, fmt.Errorf("%w: %v", ErrBadLayout, err)
	}
	if err := l.Validate(); err != nil {
		return Layout{}, err
	}
	return l, nil
}

// Validate checks the layout's internal consistency. Errors wrap
// [ErrBadLayout] and name the offending field.
func (l Layout) Validate() error {
	if l.MemorySize == 0 {
		return fmt.Errorf("%w: memory_size is zero", ErrBadLayout)
	}
	if l.MemoryBase+l.MemorySize < l.MemoryBase {
		return fmt.Errorf("%w: memory window wraps the address space", ErrBadLayout)
	}
	if l.HeapSize > l.MemorySize {
		return fmt.Errorf("%w: heap_size %d exceeds memory_size %d", ErrBadLayout, l.HeapSize, l.MemorySize)
	}
	for _, dev := range []struct {
		name string
		base uint64
	}{
		{"uart_base", l.UARTBase},
		{"timer_base", l.TimerBase},
	} {
		if dev.base >= l.MemoryBase && dev.base < l.MemoryBase+l.MemorySize {
			return fmt.Errorf("%w: %s %#x falls inside the RAM window", ErrBadLayout, dev.name, dev.base)
		}
	}
	return nil
}
