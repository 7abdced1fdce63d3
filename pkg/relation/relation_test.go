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

package relation_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cidrkit/cidrkit/pkg/addr"
	"github.com/cidrkit/cidrkit/pkg/cidr"
	"github.com/cidrkit/cidrkit/pkg/relation"
)

func parse(t *testing.T, text string) cidr.Network {
	network, err := cidr.Parse(text)
	require.NoError(t, err)
	return network
}

func TestIsSubnetOf(t *testing.T) {
	child := parse(t, "192.168.1.128/25")
	parent := parse(t, "192.168.1.0/24")

	ok, err := relation.IsSubnetOf(child, parent)
	require.NoError(t, err)
	require.True(t, ok)

	// a shorter prefix is never a subnet of a longer one
	ok, err = relation.IsSubnetOf(parent, child)
	require.NoError(t, err)
	require.False(t, ok)

	// same length, different base
	ok, err = relation.IsSubnetOf(parse(t, "192.168.2.0/24"), parent)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestIsSubnetOfIPv6(t *testing.T) {
	ok, err := relation.IsSubnetOf(parse(t, "2001:db8:8000::/33"), parse(t, "2001:db8::/32"))
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = relation.IsSubnetOf(parse(t, "2001:db9::/33"), parse(t, "2001:db8::/32"))
	require.NoError(t, err)
	require.False(t, ok)
}

func TestIsSupernetOf(t *testing.T) {
	ok, err := relation.IsSupernetOf(parse(t, "10.0.0.0/8"), parse(t, "10.1.0.0/16"))
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = relation.IsSupernetOf(parse(t, "10.1.0.0/16"), parse(t, "10.0.0.0/8"))
	require.NoError(t, err)
	require.False(t, ok)
}

func TestReflexivity(t *testing.T) {
	for _, text := range []string{"0.0.0.0/0", "10.0.0.0/8", "192.168.1.1/32", "::/0", "2001:db8::/64"} {
		network := parse(t, text)

		ok, err := relation.IsSubnetOf(network, network)
		require.NoError(t, err)
		require.True(t, ok, "input %q", text)

		ok, err = relation.IsSupernetOf(network, network)
		require.NoError(t, err)
		require.True(t, ok, "input %q", text)
	}
}

func TestInverseConsistency(t *testing.T) {
	networks := []cidr.Network{
		parse(t, "10.0.0.0/8"),
		parse(t, "10.1.0.0/16"),
		parse(t, "10.1.2.0/24"),
		parse(t, "192.168.0.0/16"),
	}
	for _, a := range networks {
		for _, b := range networks {
			forward, err := relation.IsSupernetOf(a, b)
			require.NoError(t, err)
			backward, err := relation.IsSubnetOf(b, a)
			require.NoError(t, err)
			require.Equal(t, backward, forward, "%s vs %s", a, b)
		}
	}
}

func TestAntisymmetry(t *testing.T) {
	a := parse(t, "192.168.1.10/24")
	b := parse(t, "192.168.1.200/24")

	forward, err := relation.IsSubnetOf(a, b)
	require.NoError(t, err)
	backward, err := relation.IsSubnetOf(b, a)
	require.NoError(t, err)

	require.True(t, forward && backward)
	require.True(t, a.Equal(b))
}

func TestTransitivity(t *testing.T) {
	small := parse(t, "10.1.2.192/26")
	middle := parse(t, "10.1.2.128/25")
	large := parse(t, "10.1.2.0/24")

	ok, err := relation.IsSubnetOf(small, middle)
	require.NoError(t, err)
	require.True(t, ok)
	ok, err = relation.IsSubnetOf(middle, large)
	require.NoError(t, err)
	require.True(t, ok)
	ok, err = relation.IsSubnetOf(small, large)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestOverlaps(t *testing.T) {
	ok, err := relation.Overlaps(parse(t, "10.0.0.0/23"), parse(t, "10.0.1.0/24"))
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = relation.Overlaps(parse(t, "10.0.1.0/24"), parse(t, "10.0.0.0/23"))
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = relation.Overlaps(parse(t, "10.0.0.0/24"), parse(t, "10.0.1.0/24"))
	require.NoError(t, err)
	require.False(t, ok)
}

func TestCompareSpecificity(t *testing.T) {
	s, err := relation.CompareSpecificity(parse(t, "192.168.1.0/25"), parse(t, "192.168.0.0/24"))
	require.NoError(t, err)
	require.Equal(t, relation.MoreSpecific, s)

	s, err = relation.CompareSpecificity(parse(t, "10.0.0.0/8"), parse(t, "10.1.0.0/16"))
	require.NoError(t, err)
	require.Equal(t, relation.LessSpecific, s)

	s, err = relation.CompareSpecificity(parse(t, "10.0.0.0/16"), parse(t, "10.1.0.0/16"))
	require.NoError(t, err)
	require.Equal(t, relation.EquallySpecific, s)
}

func TestFamilySafety(t *testing.T) {
	v4 := parse(t, "10.0.0.0/24")
	v6 := parse(t, "2001:db8::/32")

	_, err := relation.IsSubnetOf(v4, v6)
	require.ErrorIs(t, err, addr.ErrFamilyMismatch)
	_, err = relation.IsSupernetOf(v4, v6)
	require.ErrorIs(t, err, addr.ErrFamilyMismatch)
	_, err = relation.Overlaps(v4, v6)
	require.ErrorIs(t, err, addr.ErrFamilyMismatch)
	_, err = relation.CompareSpecificity(v4, v6)
	require.ErrorIs(t, err, addr.ErrFamilyMismatch)
}

func TestSpecificityString(t *testing.T) {
	require.Equal(t, "more specific", relation.MoreSpecific.String())
	require.Equal(t, "less specific", relation.LessSpecific.String())
	require.Equal(t, "equally specific", relation.EquallySpecific.String())
}
