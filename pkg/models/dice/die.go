package dice

import "strconv"

const StandardFaces = 6

type Die int

func (d Die) String() string {
	return strconv.Itoa(int(d))
}

var facesMap = make(map[int][]Die)

func Faces(NumFaces int) (faces []Die) {
	if res, c := facesMap[NumFaces]; c {
		return res
	}

	for v := range NumFaces {
		faces = append(faces, Die(v+1))
	}

	facesMap[NumFaces] = faces
	return
}
