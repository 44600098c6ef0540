package settings

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/matzehuels/matte/pkg/errors"
	"github.com/matzehuels/matte/pkg/layout"
)

// BoxID names one of the boxes a template produces, box1 through box7.
type BoxID int

// ParseBoxID accepts "box3", "Box3" or "3".
func ParseBoxID(s string) (BoxID, error) {
	digits := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), "box")
	n, err := strconv.Atoi(digits)
	if err != nil || n < 1 || n > layout.MaxBoxes {
		return 0, errors.New(errors.ErrCodeInvalidBox, "invalid box %q (want box1-box%d)", s, layout.MaxBoxes)
	}
	return BoxID(n), nil
}

// Valid reports whether id is within box1..box7.
func (id BoxID) Valid() bool { return id >= 1 && id <= layout.MaxBoxes }

func (id BoxID) String() string { return fmt.Sprintf("box%d", int(id)) }

// MarshalText encodes id as "boxN" so it can key a JSON object.
func (id BoxID) MarshalText() ([]byte, error) {
	if !id.Valid() {
		return nil, errors.New(errors.ErrCodeInvalidBox, "invalid box id %d", int(id))
	}
	return []byte(id.String()), nil
}

func (id *BoxID) UnmarshalText(b []byte) error {
	parsed, err := ParseBoxID(string(b))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}
