package Central2D

import (
	"bufio"
	"fmt"
	"os"
)

/*
WritePGM dumps the live interior as a binary Portable Gray Map, one of the
few raster formats that needs no library support. pixelFn maps a cell state
to an intensity, clamped here to [0,255]. Rows are written top down, i.e.
from iy = ny-1 to 0, so the image has y increasing upward.
*/
func (c *Central2D) WritePGM(path string, pixelFn func(u Vec) int) (err error) {
	var (
		file *os.File
	)
	if file, err = os.Create(path); err != nil {
		return fmt.Errorf("unable to create %s: %w", path, err)
	}
	defer file.Close()
	w := bufio.NewWriter(file)
	if _, err = fmt.Fprintf(w, "P5\n%d %d 255\n", c.Nx, c.Ny); err != nil {
		return
	}
	for iy := c.Ny - 1; iy >= 0; iy-- {
		for ix := 0; ix < c.Nx; ix++ {
			p := pixelFn(c.At(ix+NGhost, iy+NGhost))
			if p < 0 {
				p = 0
			} else if p > 255 {
				p = 255
			}
			if err = w.WriteByte(byte(p)); err != nil {
				return
			}
		}
	}
	err = w.Flush()
	return
}
