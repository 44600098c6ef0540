// Package settings defines the persisted matte document and upgrades older
// documents to the current schema.
//
// Documents are JSON objects with the keys written by every earlier release
// of the tool:
//
//	{
//	  "version": 2,
//	  "curTemplate": 0,
//	  "cssFontFamily": "Arial",
//	  "imFontName": "Arial-Bold",
//	  "metrics": {
//	    "box1": {
//	      "crop": {"cropX": 0, "cropY": 120, "cropW": 3000, "cropH": 4640},
//	      "width": 2024, "height": 3130,
//	      "pos": {"top": 0, "left": 0},
//	      "path": "photos/beach.jpg",
//	      "caption": "Summer"
//	    }
//	  },
//	  "savedAt": "2024-05-01T10:00:00Z"
//	}
//
// [Decode] runs [Migrate] on the raw object before binding it to [Document],
// so fields that no longer exist in the current schema can still be read.
package settings
