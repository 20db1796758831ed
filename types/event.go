//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
package types

type EventType int

// Event types
const (
	EventNone EventType = iota
	EventKey
	EventResize
)

type Key int

// Keys that don't produce a character. Printable input arrives in Event.Ch.
const (
	KeyNone Key = iota
	KeyUnsupported
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyHome
	KeyEnd
	KeyPgup
	KeyPgdn
	KeyEsc
	KeyEnter
	KeyTab
	KeySpace
	KeyBackspace
	KeyBackspace2
	KeyDelete
	KeyCtrlQ
	KeyCtrlS
)

type Modifier int

const (
	ModNone Modifier = 0
	ModAlt  Modifier = 1
)

// An Event is a single discrete input: a key press or a terminal resize.
type Event struct {
	Type   EventType
	Key    Key
	Ch     rune
	Mod    Modifier
	Width  int // resize only
	Height int // resize only
}
