// Package wininput defines Windows keyboard injection interfaces.
package wininput

import (
	"fmt"
	"strings"
)

// KeySpec describes a Windows virtual key.
type KeySpec struct {
	VK       uint16
	Extended bool
}

var namedKeys = map[string]KeySpec{
	"backspace":         {VK: 0x08},
	"\b":                {VK: 0x08},
	"tab":               {VK: 0x09},
	"\t":                {VK: 0x09},
	"clear":             {VK: 0x0C},
	"enter":             {VK: 0x0D},
	"return":            {VK: 0x0D},
	"\n":                {VK: 0x0D},
	"shift":             {VK: 0x10},
	"ctrl":              {VK: 0x11},
	"alt":               {VK: 0x12},
	"pause":             {VK: 0x13},
	"capslock":          {VK: 0x14},
	"esc":               {VK: 0x1B},
	"escape":            {VK: 0x1B},
	"space":             {VK: 0x20},
	" ":                 {VK: 0x20},
	"pageup":            {VK: 0x21, Extended: true},
	"pgup":              {VK: 0x21, Extended: true},
	"pagedown":          {VK: 0x22, Extended: true},
	"pgdn":              {VK: 0x22, Extended: true},
	"end":               {VK: 0x23, Extended: true},
	"home":              {VK: 0x24, Extended: true},
	"left":              {VK: 0x25, Extended: true},
	"up":                {VK: 0x26, Extended: true},
	"right":             {VK: 0x27, Extended: true},
	"down":              {VK: 0x28, Extended: true},
	"select":            {VK: 0x29},
	"print":             {VK: 0x2A},
	"execute":           {VK: 0x2B},
	"printscreen":       {VK: 0x2C, Extended: true},
	"prtsc":             {VK: 0x2C, Extended: true},
	"prtscr":            {VK: 0x2C, Extended: true},
	"prntscrn":          {VK: 0x2C, Extended: true},
	"insert":            {VK: 0x2D, Extended: true},
	"delete":            {VK: 0x2E, Extended: true},
	"del":               {VK: 0x2E, Extended: true},
	"help":              {VK: 0x2F},
	"win":               {VK: 0x5B, Extended: true},
	"winleft":           {VK: 0x5B, Extended: true},
	"winright":          {VK: 0x5C, Extended: true},
	"apps":              {VK: 0x5D, Extended: true},
	"sleep":             {VK: 0x5F},
	"multiply":          {VK: 0x6A},
	"add":               {VK: 0x6B},
	"separator":         {VK: 0x6C},
	"subtract":          {VK: 0x6D},
	"decimal":           {VK: 0x6E},
	"divide":            {VK: 0x6F, Extended: true},
	"numlock":           {VK: 0x90, Extended: true},
	"scrolllock":        {VK: 0x91},
	"shiftleft":         {VK: 0xA0},
	"shiftright":        {VK: 0xA1},
	"ctrlleft":          {VK: 0xA2},
	"ctrlright":         {VK: 0xA3, Extended: true},
	"altleft":           {VK: 0xA4},
	"altright":          {VK: 0xA5, Extended: true},
	"browserback":       {VK: 0xA6, Extended: true},
	"browserforward":    {VK: 0xA7, Extended: true},
	"browserrefresh":    {VK: 0xA8, Extended: true},
	"browserstop":       {VK: 0xA9, Extended: true},
	"browsersearch":     {VK: 0xAA, Extended: true},
	"browserfavorites":  {VK: 0xAB, Extended: true},
	"browserhome":       {VK: 0xAC, Extended: true},
	"volumemute":        {VK: 0xAD, Extended: true},
	"volumedown":        {VK: 0xAE, Extended: true},
	"volumeup":          {VK: 0xAF, Extended: true},
	"nexttrack":         {VK: 0xB0, Extended: true},
	"prevtrack":         {VK: 0xB1, Extended: true},
	"stop":              {VK: 0xB2, Extended: true},
	"playpause":         {VK: 0xB3, Extended: true},
	"launchmail":        {VK: 0xB4, Extended: true},
	"launchmediaselect": {VK: 0xB5, Extended: true},
	"launchapp1":        {VK: 0xB6, Extended: true},
	"launchapp2":        {VK: 0xB7, Extended: true},
	";":                 {VK: 0xBA},
	"=":                 {VK: 0xBB},
	",":                 {VK: 0xBC},
	".":                 {VK: 0xBE},
	"/":                 {VK: 0xBF},
	"`":                 {VK: 0xC0},
	"[":                 {VK: 0xDB},
	"\\":                {VK: 0xDC},
	"]":                 {VK: 0xDD},
	"'":                 {VK: 0xDE},
}

// Lookup resolves a key name to its virtual key. Names match case-insensitively.
func Lookup(name string) (KeySpec, error) {
	key := strings.ToLower(name)
	if spec, ok := namedKeys[key]; ok {
		return spec, nil
	}
	if len(key) == 1 {
		c := key[0]
		switch {
		case c >= 'a' && c <= 'z':
			return KeySpec{VK: uint16(c - 'a' + 0x41)}, nil
		case c >= '0' && c <= '9':
			return KeySpec{VK: uint16(c - '0' + 0x30)}, nil
		}
	}
	if n, ok := indexedKey(key, "num", 0, 9); ok {
		return KeySpec{VK: uint16(0x60 + n)}, nil
	}
	if n, ok := indexedKey(key, "f", 1, 24); ok {
		return KeySpec{VK: uint16(0x70 + n - 1)}, nil
	}
	return KeySpec{}, fmt.Errorf("%w: %q", ErrUnknownKey, name)
}

// indexedKey parses names like "f12" or "num5" within [lo, hi].
func indexedKey(name, prefix string, lo, hi int) (int, bool) {
	rest, ok := strings.CutPrefix(name, prefix)
	if !ok || rest == "" || len(rest) > 2 {
		return 0, false
	}
	n := 0
	for _, r := range rest {
		if r < '0' || r > '9' {
			return 0, false
		}
		n = n*10 + int(r-'0')
	}
	if n < lo || n > hi {
		return 0, false
	}
	return n, true
}

// lookupAll resolves every name before any key is sent.
func lookupAll(names []string) ([]KeySpec, error) {
	if len(names) == 0 {
		return nil, fmt.Errorf("%w: empty chord", ErrUnknownKey)
	}
	specs := make([]KeySpec, 0, len(names))
	for _, name := range names {
		spec, err := Lookup(name)
		if err != nil {
			return nil, err
		}
		specs = append(specs, spec)
	}
	return specs, nil
}
