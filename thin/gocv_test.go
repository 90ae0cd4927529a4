//go:build gocv

package thin

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gocv.io/x/gocv/contrib"
)

func TestOpenCVMatchesGuoHall(t *testing.T) {
	m := bar(20, 12, 3, 8, 2, 17)

	want, err := GuoHall{}.Thin(m)
	require.NoError(t, err)
	got, err := OpenCV{Type: contrib.ThinningGuoHall}.Thin(m)
	require.NoError(t, err)
	require.Equal(t, want.Pix, got.Pix)
}
