package migrations

import "gorm.io/gorm"

// Legacy imports wrote "fast" and "regular" for what the decay engine knows
// as "rapid" and "short". Normalizing once here keeps the closed-set check in
// the engine strict instead of carrying aliases forever.
func init() {
	Register("001_normalize_insulin_class",
		func(db *gorm.DB) error {
			if err := db.Exec(`UPDATE insulin_dose_records SET class = 'rapid' WHERE class = 'fast'`).Error; err != nil {
				return err
			}
			return db.Exec(`UPDATE insulin_dose_records SET class = 'short' WHERE class = 'regular'`).Error
		},
		func(db *gorm.DB) error {
			if err := db.Exec(`UPDATE insulin_dose_records SET class = 'fast' WHERE class = 'rapid'`).Error; err != nil {
				return err
			}
			return db.Exec(`UPDATE insulin_dose_records SET class = 'regular' WHERE class = 'short'`).Error
		},
	)
}
