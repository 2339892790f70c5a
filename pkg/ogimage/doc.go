// Package ogimage renders the UberPadel social-share preview images.
//
// # Overview
//
// Every page variant of the site (main, americano, mexicano, mix, team) gets
// a 1200×630 Open Graph card built from the same recipe: a two-color
// horizontal gradient, a faint court motif, a darkening layer for contrast,
// then icon, title, subtitle, tagline and brand watermark centered on the
// canvas, finished with "L" brackets in the corners.
//
// The package is purely functional: rendering an image is a deterministic
// function of its [FormatSpec] and the fixed canvas dimensions. There is no
// shared state between images and no randomness, so repeated runs produce
// byte-identical files.
//
// # Basic Usage
//
// Create a [Renderer] with a font resolver, render a spec, and save:
//
//	r := ogimage.NewRenderer(fonts.NewResolver())
//	img, err := r.Render(spec)
//	if err != nil {
//	    return err
//	}
//	err = ogimage.Save(img, filepath.Join(dir, spec.Filename))
//
// The full table of shipped variants is available via [Formats].
package ogimage
