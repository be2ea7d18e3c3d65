package cube

import "github.com/annel0/voxelcore/internal/vec"

// Face обозначает одну из шести граней ячейки блока
type Face uint8

const (
	FaceDown Face = iota
	FaceUp
	FaceNorth // -Z
	FaceSouth // +Z
	FaceWest  // -X
	FaceEast  // +X
)

var faceOffsets = [...]vec.Vec3{
	FaceDown:  {Y: -1},
	FaceUp:    {Y: 1},
	FaceNorth: {Z: -1},
	FaceSouth: {Z: 1},
	FaceWest:  {X: -1},
	FaceEast:  {X: 1},
}

var faceNames = [...]string{"down", "up", "north", "south", "west", "east"}

// Faces возвращает все шесть граней в фиксированном порядке
func Faces() []Face {
	return []Face{FaceDown, FaceUp, FaceNorth, FaceSouth, FaceWest, FaceEast}
}

// Valid сообщает, является ли значение одной из шести граней
func (f Face) Valid() bool {
	return f <= FaceEast
}

// Opposite возвращает противоположную грань
func (f Face) Opposite() Face {
	return f ^ 1
}

// Offset возвращает единичный сдвиг к соседу через эту грань
func (f Face) Offset() vec.Vec3 {
	if !f.Valid() {
		return vec.Vec3{}
	}
	return faceOffsets[f]
}

// String возвращает имя грани
func (f Face) String() string {
	if !f.Valid() {
		return "unknown"
	}
	return faceNames[f]
}
