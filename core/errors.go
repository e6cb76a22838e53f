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

import "errors"

// Domain validation errors
var (
	// ErrInvalidStoryRecord indicates a StoryRecord failed validation.
	ErrInvalidStoryRecord = errors.New("invalid story record")

	// ErrEmptyStoryID indicates the StoryID field is empty.
	ErrEmptyStoryID = errors.New("story ID cannot be empty")

	// ErrEmptyVector indicates the DescVector field is empty.
	ErrEmptyVector = errors.New("description vector cannot be empty")

	// ErrEmptyFileName indicates the FileName field is empty.
	ErrEmptyFileName = errors.New("file name cannot be empty")

	// ErrEmptyTimestamp indicates the Timestamp field is empty.
	ErrEmptyTimestamp = errors.New("timestamp cannot be empty")
)
