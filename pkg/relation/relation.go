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

// Package relation decides structural relations between CIDR blocks:
// subnet, supernet, overlap and specificity ordering. Every function
// requires same-family operands and fails with addr.ErrFamilyMismatch
// before any bit computation.
package relation

import (
	"github.com/pkg/errors"

	"github.com/cidrkit/cidrkit/pkg/addr"
	"github.com/cidrkit/cidrkit/pkg/cidr"
)

// Specificity orders two blocks by prefix length
type Specificity int

const (
	// LessSpecific means a shorter prefix, a larger block
	LessSpecific Specificity = iota - 1
	// EquallySpecific means equal prefix lengths
	EquallySpecific
	// MoreSpecific means a longer prefix, a smaller block
	MoreSpecific
)

func (s Specificity) String() string {
	switch s {
	case LessSpecific:
		return "less specific"
	case MoreSpecific:
		return "more specific"
	default:
		return "equally specific"
	}
}

// IsSubnetOf reports whether every address of child also lies in parent:
// child's prefix is at least as long as parent's and child's base lies in
// parent. The relation is reflexive; equal networks are mutual subnets.
func IsSubnetOf(child, parent cidr.Network) (bool, error) {
	if child.Family() != parent.Family() {
		return false, errors.Wrapf(addr.ErrFamilyMismatch,
			"cannot relate %s network %q to %s network %q", child.Family(), child, parent.Family(), parent)
	}
	if child.PrefixLength() < parent.PrefixLength() {
		return false, nil
	}
	return parent.Contains(child.Base())
}

// IsSupernetOf is the strict inverse of IsSubnetOf and is defined by
// delegation so the two relations cannot drift apart.
func IsSupernetOf(parent, child cidr.Network) (bool, error) {
	return IsSubnetOf(child, parent)
}

// Overlaps reports whether the two blocks share at least one address.
// Prefix ranges cannot partially overlap, so one containing the other is
// the complete criterion.
func Overlaps(a, b cidr.Network) (bool, error) {
	forward, err := IsSubnetOf(a, b)
	if err != nil || forward {
		return forward, err
	}
	return IsSubnetOf(b, a)
}

// CompareSpecificity orders a against b by prefix length; a longer prefix
// is the more specific, smaller block. Callers building longest-prefix
// matching use it as the tie-break.
func CompareSpecificity(a, b cidr.Network) (Specificity, error) {
	if a.Family() != b.Family() {
		return EquallySpecific, errors.Wrapf(addr.ErrFamilyMismatch,
			"cannot relate %s network %q to %s network %q", a.Family(), a, b.Family(), b)
	}
	switch {
	case a.PrefixLength() > b.PrefixLength():
		return MoreSpecific, nil
	case a.PrefixLength() < b.PrefixLength():
		return LessSpecific, nil
	}
	return EquallySpecific, nil
}
