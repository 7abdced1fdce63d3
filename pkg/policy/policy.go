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

// Package policy screens addresses against configured allow and deny CIDR
// lists. It is a caller of the core relation logic, not part of it: the
// lists are a handful of configured blocks scanned linearly, not a routing
// table.
package policy

import (
	"github.com/ghodss/yaml"
	"github.com/pkg/errors"

	"github.com/cidrkit/cidrkit/pkg/addr"
	"github.com/cidrkit/cidrkit/pkg/cidr"
	"github.com/cidrkit/cidrkit/pkg/relation"
)

// Decision is the outcome of screening one address
type Decision int

const (
	// NoMatch means no configured block contains the address
	NoMatch Decision = iota
	// Allow means the most specific matching block is an allow entry
	Allow
	// Deny means the most specific matching block is a deny entry;
	// deny also wins a tie at equal prefix length
	Deny
)

func (d Decision) String() string {
	switch d {
	case Allow:
		return "allow"
	case Deny:
		return "deny"
	default:
		return "no match"
	}
}

// Policy holds the parsed allow and deny blocks
type Policy struct {
	allow []cidr.Network
	deny  []cidr.Network
}

// New parses the allow and deny CIDR lists into a policy. The first entry
// that fails to parse aborts construction.
func New(allow, deny []string) (*Policy, error) {
	p := &Policy{}
	var err error
	if p.allow, err = parseAll(allow); err != nil {
		return nil, err
	}
	if p.deny, err = parseAll(deny); err != nil {
		return nil, err
	}
	return p, nil
}

// Load decodes a YAML document of the form
//
//	allow: ["10.0.0.0/8"]
//	deny:  ["10.1.0.0/16"]
//
// into a policy.
func Load(data []byte) (*Policy, error) {
	var doc struct {
		Allow []string `json:"allow"`
		Deny  []string `json:"deny"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "cannot decode policy document")
	}
	return New(doc.Allow, doc.Deny)
}

// Decide screens an address: the most specific configured block containing
// it determines the outcome, deny winning a tie at equal prefix length.
// Blocks of another family never match.
func (p *Policy) Decide(a addr.Address) Decision {
	decision := NoMatch
	var best cidr.Network
	// deny goes first so an equally specific allow cannot displace it
	for _, entry := range []struct {
		networks []cidr.Network
		decision Decision
	}{
		{p.deny, Deny},
		{p.allow, Allow},
	} {
		for _, network := range entry.networks {
			contained, err := network.Contains(a)
			if err != nil || !contained {
				continue
			}
			if decision == NoMatch {
				best, decision = network, entry.decision
				continue
			}
			if s, _ := relation.CompareSpecificity(network, best); s == relation.MoreSpecific {
				best, decision = network, entry.decision
			}
		}
	}
	return decision
}

// DecideString parses the address text and screens it
func (p *Policy) DecideString(text string) (Decision, error) {
	a, err := addr.Parse(text)
	if err != nil {
		return NoMatch, err
	}
	return p.Decide(a), nil
}

func parseAll(texts []string) ([]cidr.Network, error) {
	networks := make([]cidr.Network, 0, len(texts))
	for _, text := range texts {
		network, err := cidr.Parse(text)
		if err != nil {
			return nil, err
		}
		networks = append(networks, network)
	}
	return networks, nil
}
