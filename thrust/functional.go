// Copyright 2025 cccl Authors
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

package thrust

// Binary functors usable as adjacent-difference operators.

// Minus returns l - r. It is the default adjacent-difference operator.
func Minus[T Element](l, r T) T { return l - r }

// Plus returns l + r.
func Plus[T Element](l, r T) T { return l + r }

// Multiplies returns l * r.
func Multiplies[T Element](l, r T) T { return l * r }

// Maximum returns the larger of l and r. For equal operands it returns l.
func Maximum[T Element](l, r T) T {
	if l < r {
		return r
	}
	return l
}

// Minimum returns the smaller of l and r. For equal operands it returns l.
func Minimum[T Element](l, r T) T {
	if r < l {
		return r
	}
	return l
}
