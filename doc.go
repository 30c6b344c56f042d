// Package iaps samples picture stimuli from a local copy of the
// International Affective Picture System by normative affect rating.
//
// The IAPS is a licensed research dataset and this package never ships or
// decodes its pictures. It reads the normative ratings table from the
// technical report included with the distribution (AllSubjects_1-20.txt),
// keeps the catalog in memory, and hands back image file paths for
// stimulus selection:
//
//	paths, err := iaps.SamplePositiveImages(10)
//	if err != nil {
//		log.Fatal(err)
//	}
//	// open paths[0] with the image library of your choice
//
// The dataset is expected under ~/data/IAPS 2008 1-20; the IAPS_DIR,
// IAPS_SCORING_FILE and IAPS_IMAGES_DIR environment variables override
// the stock layout.
package iaps
