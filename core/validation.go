// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package core

import "fmt"

// ValidateCountMatrix checks that counts is a well formed count matrix.
//
// Validation rules:
//   - every row has the same number of columns
//   - every cell is >= 0
//
// NOT validated:
//   - empty matrices (zero rows are a valid count matrix)
//   - rows summing to zero (an empty document is rejected by TF, not here)
func ValidateCountMatrix(counts CountMatrix) error {
	cols := counts.Cols()
	for i, row := range counts {
		if len(row) != cols {
			return fmt.Errorf("%w: row %d has %d columns, want %d", ErrRaggedMatrix, i, len(row), cols)
		}
		for j, c := range row {
			if c < 0 {
				return fmt.Errorf("%w: row %d column %d is %d", ErrNegativeCount, i, j, c)
			}
		}
	}
	return nil
}
