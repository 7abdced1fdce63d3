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

// Package cidr provides immutable CIDR network blocks built on the addr
// value types
package cidr

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/cidrkit/cidrkit/pkg/addr"
)

// ErrInvalidPrefixLength means a prefix was present but non-integral or
// outside [0, family.MaxPrefixLength()]
var ErrInvalidPrefixLength = errors.New("invalid prefix length")

// Network is an immutable CIDR block: a normalized base address plus a
// prefix length. The base always has every host bit cleared, so equivalent
// notations compare equal.
type Network struct {
	base      addr.Address
	prefixLen int
}

// Parse parses "<address>/<prefix>" text. Address grammar failures yield
// addr.ErrInvalidFormat; a non-numeric or out-of-range prefix yields
// ErrInvalidPrefixLength. Host bits of the address are cleared.
func Parse(text string) (Network, error) {
	addressText, prefixText, found := strings.Cut(text, "/")
	if !found {
		return Network{}, errors.Wrapf(addr.ErrInvalidFormat, "not a CIDR network: %q", text)
	}
	base, err := addr.Parse(addressText)
	if err != nil {
		return Network{}, err
	}
	prefixLen, err := strconv.Atoi(prefixText)
	if err != nil {
		return Network{}, errors.Wrapf(ErrInvalidPrefixLength, "not a prefix length: %q", prefixText)
	}
	return FromAddress(base, prefixLen)
}

// FromAddress constructs a network from an address and a prefix length,
// clearing the host bits of the address
func FromAddress(base addr.Address, prefixLen int) (Network, error) {
	if prefixLen < 0 || prefixLen > base.Family().MaxPrefixLength() {
		return Network{}, errors.Wrapf(ErrInvalidPrefixLength,
			"prefix length %d is out of range [0, %d] for %s", prefixLen, base.Family().MaxPrefixLength(), base.Family())
	}
	return Network{
		base:      base.And(addr.MaskFor(base.Family(), prefixLen)),
		prefixLen: prefixLen,
	}, nil
}

// Family returns the address family of the block
func (n Network) Family() addr.Family {
	return n.base.Family()
}

// Base returns the normalized base address
func (n Network) Base() addr.Address {
	return n.base
}

// PrefixLength returns the number of leading bits fixed by the block
func (n Network) PrefixLength() int {
	return n.prefixLen
}

// String renders "base/prefixLen" from the normalized base. Parsing the
// result yields an equal network.
func (n Network) String() string {
	return n.base.String() + "/" + strconv.Itoa(n.prefixLen)
}

// Mask returns the prefix mask of the block in address form
func (n Network) Mask() addr.Address {
	return addr.MaskFor(n.Family(), n.prefixLen)
}

// LastAddress returns the highest address of the block: the base with every
// host bit set. For IPv4 this is the broadcast address.
func (n Network) LastAddress() addr.Address {
	return n.base.Or(n.Mask().Not())
}

// HostBits returns the number of bits free to vary within the block
func (n Network) HostBits() int {
	return n.Family().MaxPrefixLength() - n.prefixLen
}

// HostCapacity returns the number of addresses in the block, including the
// base and last addresses. The IPv6 count does not fit an uint64, hence
// the big.Int.
func (n Network) HostCapacity() *big.Int {
	return new(big.Int).Lsh(big.NewInt(1), uint(n.HostBits()))
}

// Contains reports whether the leading prefix bits of the address equal the
// block's base. Addresses of another family are never contained; asking is
// ErrFamilyMismatch.
func (n Network) Contains(a addr.Address) (bool, error) {
	if a.Family() != n.Family() {
		return false, errors.Wrapf(addr.ErrFamilyMismatch,
			"%s network %q cannot contain %s address %q", n.Family(), n, a.Family(), a)
	}
	return a.And(n.Mask()).Equal(n.base), nil
}

// Equal reports whether both networks have the same family, base and
// prefix length
func (n Network) Equal(other Network) bool {
	return n == other
}

// Supernet returns the block one bit less specific, covering twice the
// address space. There is no supernet of a zero-length prefix.
func (n Network) Supernet() (Network, bool) {
	if n.prefixLen == 0 {
		return Network{}, false
	}
	parent, _ := FromAddress(n.base, n.prefixLen-1)
	return parent, true
}

// Subnets returns the two halves of the block, one bit more specific and
// distinguished by the first host bit. A full-length prefix has no subnets.
func (n Network) Subnets() (lower, upper Network, ok bool) {
	if n.prefixLen == n.Family().MaxPrefixLength() {
		return Network{}, Network{}, false
	}
	lower, _ = FromAddress(n.base, n.prefixLen+1)
	nextBit := addr.MaskFor(n.Family(), n.prefixLen+1).And(addr.MaskFor(n.Family(), n.prefixLen).Not())
	upper, _ = FromAddress(n.base.Or(nextBit), n.prefixLen+1)
	return lower, upper, true
}
