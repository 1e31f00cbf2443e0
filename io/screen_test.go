package io

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScreen(t *testing.T) {
	assert := assert.New(t)

	screen := NewScreen(4, 2)
	assert.Equal(4*CELL_WIDTH, screen.Width())
	assert.Equal(2*LINE_HEIGHT, screen.Height())

	assert.NoError(screen.DrawChar(0, 0, 'a'))
	assert.NoError(screen.DrawChar(CELL_WIDTH*3+5, LINE_HEIGHT+1, 'z'))
	assert.Equal(byte('a'), screen.At(0, 0))
	assert.Equal(byte('z'), screen.At(3, 1))
	assert.Equal(2, screen.Draws)

	// Off-screen draws are clipped.
	assert.NoError(screen.DrawChar(CELL_WIDTH*4, 0, 'x'))
	assert.NoError(screen.DrawChar(-1, 0, 'x'))
	assert.NoError(screen.DrawChar(0, -1, 'x'))
	assert.NoError(screen.DrawChar(-CELL_WIDTH+1, -LINE_HEIGHT+1, 'x'))
	assert.Equal(2, screen.Draws)
	assert.Equal(byte(0), screen.At(4, 0))

	assert.Equal("a\n   z", screen.String())

	assert.NoError(screen.FillRect(0, 0, CELL_WIDTH*4, LINE_HEIGHT*2))
	assert.Equal("\n", screen.String())
}

func TestScreen_FillRect_Clip(t *testing.T) {
	assert := assert.New(t)

	screen := NewScreen(2, 2)
	screen.DrawChar(0, 0, 'a')
	screen.DrawChar(CELL_WIDTH, LINE_HEIGHT, 'b')

	assert.NoError(screen.FillRect(CELL_WIDTH*5, LINE_HEIGHT*5, CELL_WIDTH, LINE_HEIGHT))
	assert.NoError(screen.FillRect(-CELL_WIDTH, 0, CELL_WIDTH, LINE_HEIGHT))
	assert.Equal("a\n b", screen.String())

	assert.NoError(screen.FillRect(CELL_WIDTH, LINE_HEIGHT, CELL_WIDTH*9, LINE_HEIGHT*9))
	assert.Equal("a\n", screen.String())
}
