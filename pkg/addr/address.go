// Copyright (c) 2025-2026 Cidrkit and/or its affiliates.
//
// SPDX-License-Identifier: Apache-2.0
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at:
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package addr provides immutable, family-tagged IP address values and the
// bit arithmetic shared by the CIDR containment logic.
package addr

import (
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidFormat means the text does not match the address grammar
	ErrInvalidFormat = errors.New("invalid address format")
	// ErrFamilyMismatch means an operation received operands from different
	// address families where a single family is required
	ErrFamilyMismatch = errors.New("address family mismatch")
)

// Address is an immutable IP address tagged with its family. The address
// bits are held as a big-endian unsigned 128-bit integer in a high/low pair;
// an IPv4 address occupies the low 32 bits.
type Address struct {
	family    Family
	high, low uint64
}

// Parse parses dotted-quad IPv4 text or colon-hex IPv6 text. The grammar is
// strict: no whitespace trimming, no zone suffixes, no IPv4-embedded IPv6
// forms, at most one "::" elision.
func Parse(text string) (Address, error) {
	if strings.ContainsRune(text, ':') {
		a, ok := parseIPv6(text)
		if !ok {
			return Address{}, errors.Wrapf(ErrInvalidFormat, "not a valid IPv6 address: %q", text)
		}
		return a, nil
	}
	a, ok := parseIPv4(text)
	if !ok {
		return Address{}, errors.Wrapf(ErrInvalidFormat, "not a valid IPv4 address: %q", text)
	}
	return a, nil
}

// FromBytes constructs an address directly from len(b) == f.ByteWidth()
// octets in network order. A width violation is a programming error and
// panics rather than returning an error.
func FromBytes(f Family, b []byte) Address {
	if len(b) != f.ByteWidth() {
		panic(fmt.Sprintf("addr: %d bytes cannot form an %s address", len(b), f))
	}
	if f == IPv4 {
		return Address{family: IPv4, low: uint64(binary.BigEndian.Uint32(b))}
	}
	return Address{
		family: IPv6,
		high:   binary.BigEndian.Uint64(b[:8]),
		low:    binary.BigEndian.Uint64(b[8:]),
	}
}

// Family returns the address family tag
func (a Address) Family() Family {
	return a.family
}

// Bytes returns the address octets in network order
func (a Address) Bytes() []byte {
	if a.family == IPv4 {
		b := make([]byte, 4)
		binary.BigEndian.PutUint32(b, uint32(a.low))
		return b
	}
	b := make([]byte, 16)
	binary.BigEndian.PutUint64(b[:8], a.high)
	binary.BigEndian.PutUint64(b[8:], a.low)
	return b
}

// String renders the canonical text form: dotted quad for IPv4, the
// compressed lowercase form for IPv6. The result round-trips through Parse.
func (a Address) String() string {
	if a.family == IPv4 {
		return fmt.Sprintf("%d.%d.%d.%d", byte(a.low>>24), byte(a.low>>16), byte(a.low>>8), byte(a.low))
	}
	return formatIPv6(a.high, a.low)
}

// Equal reports whether both addresses have the same family and bits.
// Addresses of distinct families are simply unequal.
func (a Address) Equal(b Address) bool {
	return a == b
}

// Compare orders two same-family addresses as unsigned big-endian integers,
// returning -1, 0 or 1. Mixed families are never ordered and yield
// ErrFamilyMismatch.
func Compare(a, b Address) (int, error) {
	if a.family != b.family {
		return 0, errors.Wrapf(ErrFamilyMismatch, "cannot compare %s address %q with %s address %q", a.family, a, b.family, b)
	}
	switch {
	case a.high < b.high:
		return -1, nil
	case a.high > b.high:
		return 1, nil
	case a.low < b.low:
		return -1, nil
	case a.low > b.low:
		return 1, nil
	}
	return 0, nil
}

// MaskFor builds the address whose leading `ones` bits are set and whose
// remaining bits are clear. It is the single source of prefix bit order:
// normalization, Contains and the subnet relations all mask through it.
// A prefix count outside [0, f.MaxPrefixLength()] is a programming error.
func MaskFor(f Family, ones int) Address {
	if ones < 0 || ones > f.MaxPrefixLength() {
		panic(fmt.Sprintf("addr: prefix length %d is out of range for %s", ones, f))
	}
	if f == IPv4 {
		if ones == 0 {
			return Address{family: IPv4}
		}
		return Address{family: IPv4, low: uint64(^uint32(0) << (32 - ones))}
	}
	mask := Address{family: IPv6}
	switch {
	case ones == 0:
	case ones <= 64:
		mask.high = ^uint64(0) << (64 - ones)
	default:
		mask.high = ^uint64(0)
		mask.low = ^uint64(0) << (128 - ones)
	}
	return mask
}

// And returns the bitwise AND of two same-family addresses.
// Mixing families here is a programming error.
func (a Address) And(b Address) Address {
	if a.family != b.family {
		panic("addr: bitwise arithmetic across address families")
	}
	return Address{family: a.family, high: a.high & b.high, low: a.low & b.low}
}

// Or returns the bitwise OR of two same-family addresses.
// Mixing families here is a programming error.
func (a Address) Or(b Address) Address {
	if a.family != b.family {
		panic("addr: bitwise arithmetic across address families")
	}
	return Address{family: a.family, high: a.high | b.high, low: a.low | b.low}
}

// Not returns the bitwise complement within the family width
func (a Address) Not() Address {
	if a.family == IPv4 {
		return Address{family: IPv4, low: a.low ^ uint64(^uint32(0))}
	}
	return Address{family: IPv6, high: ^a.high, low: ^a.low}
}

func parseIPv4(text string) (Address, bool) {
	parts := strings.Split(text, ".")
	if len(parts) != 4 {
		return Address{}, false
	}
	var value uint64
	for _, part := range parts {
		if len(part) == 0 || len(part) > 3 {
			return Address{}, false
		}
		octet, err := strconv.ParseUint(part, 10, 16)
		if err != nil || octet > 255 {
			return Address{}, false
		}
		value = value<<8 | octet
	}
	return Address{family: IPv4, low: value}, true
}

func parseIPv6(text string) (Address, bool) {
	head, tail := text, ""
	elided := false
	if i := strings.Index(text, "::"); i >= 0 {
		elided = true
		head, tail = text[:i], text[i+2:]
	}
	headGroups, ok := parseHextets(head)
	if !ok {
		return Address{}, false
	}
	tailGroups, ok := parseHextets(tail)
	if !ok {
		return Address{}, false
	}
	total := len(headGroups) + len(tailGroups)
	if elided && total >= 8 {
		// "::" must elide at least one zero group
		return Address{}, false
	}
	if !elided && total != 8 {
		return Address{}, false
	}
	groups := make([]uint16, 0, 8)
	groups = append(groups, headGroups...)
	for i := total; i < 8; i++ {
		groups = append(groups, 0)
	}
	groups = append(groups, tailGroups...)

	a := Address{family: IPv6}
	for i := 0; i < 4; i++ {
		a.high = a.high<<16 | uint64(groups[i])
	}
	for i := 4; i < 8; i++ {
		a.low = a.low<<16 | uint64(groups[i])
	}
	return a, true
}

func parseHextets(text string) ([]uint16, bool) {
	if text == "" {
		return nil, true
	}
	parts := strings.Split(text, ":")
	groups := make([]uint16, 0, len(parts))
	for _, part := range parts {
		if len(part) == 0 || len(part) > 4 {
			return nil, false
		}
		value, err := strconv.ParseUint(part, 16, 16)
		if err != nil {
			return nil, false
		}
		groups = append(groups, uint16(value))
	}
	return groups, true
}

func formatIPv6(high, low uint64) string {
	var groups [8]uint16
	for i := 0; i < 4; i++ {
		groups[i] = uint16(high >> (48 - 16*i))
		groups[i+4] = uint16(low >> (48 - 16*i))
	}

	// locate the leftmost longest run of zero groups; a single zero group
	// is never compressed
	best, bestLen := -1, 1
	for i := 0; i < 8; i++ {
		if groups[i] != 0 {
			continue
		}
		j := i
		for j < 8 && groups[j] == 0 {
			j++
		}
		if j-i > bestLen {
			best, bestLen = i, j-i
		}
		i = j
	}

	var b strings.Builder
	for i := 0; i < 8; i++ {
		if i == best {
			b.WriteString("::")
			i += bestLen - 1
			continue
		}
		if i > 0 && i != best+bestLen {
			b.WriteByte(':')
		}
		b.WriteString(strconv.FormatUint(uint64(groups[i]), 16))
	}
	return b.String()
}
