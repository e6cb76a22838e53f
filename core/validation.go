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

// ValidateStoryRecord validates a StoryRecord according to domain rules.
//
// Validation rules:
//   - StoryID must not be empty
//   - DescVector must not be empty (empty-text documents are rejected before embedding)
//   - FileName must not be empty
//   - Timestamp must not be empty
//
// NOT validated (owned downstream):
//   - ProcessedFlags (this pipeline only ever writes "NO")
//   - TestCases (always empty at insertion)
func ValidateStoryRecord(record *StoryRecord) error {
	if record == nil {
		return fmt.Errorf("%w: record is nil", ErrInvalidStoryRecord)
	}

	if record.StoryID == "" {
		return fmt.Errorf("%w: %w", ErrInvalidStoryRecord, ErrEmptyStoryID)
	}

	if len(record.DescVector) == 0 {
		return fmt.Errorf("%w: %w", ErrInvalidStoryRecord, ErrEmptyVector)
	}

	if record.FileName == "" {
		return fmt.Errorf("%w: %w", ErrInvalidStoryRecord, ErrEmptyFileName)
	}

	if record.Timestamp == "" {
		return fmt.Errorf("%w: %w", ErrInvalidStoryRecord, ErrEmptyTimestamp)
	}

	return nil
}
