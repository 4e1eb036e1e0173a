// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package field

import "strings"

// MERSENNE31 is the base field of the Cairo AIR, and the default.
var MERSENNE31 = Config{"M31", 31}

// KOALABEAR is the KoalaBear field, useful for cross-checking that column
// generation is field agnostic.
var KOALABEAR = Config{"KOALABEAR", 31}

// BLS12_377 is the scalar field of the BLS12-377 curve.
var BLS12_377 = Config{"BLS12_377", 252}

// FIELD_CONFIGS determines the set of supported fields.
var FIELD_CONFIGS = []Config{
	MERSENNE31,
	KOALABEAR,
	BLS12_377,
}

// Config identifies one of the supported fields.
type Config struct {
	// Name suitable for identifying the config.  This is only really used for
	// selecting a field from the command line, and for error reporting.
	Name string
	// Number of bits needed to represent the modulus.
	BandWidth uint
}

// GetConfig returns the field configuration corresponding with the given
// name (ignoring case), or nil no such config exists.
func GetConfig(name string) *Config {
	for i := range FIELD_CONFIGS {
		if strings.EqualFold(FIELD_CONFIGS[i].Name, name) {
			return &FIELD_CONFIGS[i]
		}
	}
	//
	return nil
}

// Names returns the names of all supported field configurations.
func Names() []string {
	names := make([]string, len(FIELD_CONFIGS))
	//
	for i, c := range FIELD_CONFIGS {
		names[i] = c.Name
	}
	//
	return names
}
