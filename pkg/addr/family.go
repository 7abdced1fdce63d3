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

package addr

// Family is a closed tag distinguishing the two IP address families
type Family byte

const (
	// IPv4 is the 32-bit address family
	IPv4 Family = iota
	// IPv6 is the 128-bit address family
	IPv6
)

// ByteWidth returns the number of octets in an address of this family
func (f Family) ByteWidth() int {
	if f == IPv4 {
		return 4
	}
	return 16
}

// MaxPrefixLength returns the number of bits in an address of this family,
// which is also the largest valid CIDR prefix length
func (f Family) MaxPrefixLength() int {
	if f == IPv4 {
		return 32
	}
	return 128
}

func (f Family) String() string {
	if f == IPv4 {
		return "IPv4"
	}
	return "IPv6"
}
