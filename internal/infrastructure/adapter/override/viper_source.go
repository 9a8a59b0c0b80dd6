package override

import (
	"github.com/spf13/viper"

	"github.com/amirhossein-jamali/logcat/internal/domain/entity"
)

// ViperSource reads log.tag.<AppTag> from a viper instance, so overrides can
// come from the config file or from LOGCAT_LOG_TAG_<APPTAG> variables
type ViperSource struct {
	v *viper.Viper
}

// NewViperSource creates a source over v
func NewViperSource(v *viper.Viper) *ViperSource {
	return &ViperSource{v: v}
}

// Lookup returns the override for tag. Unknown levels count as no override.
func (s *ViperSource) Lookup(tag string) (entity.Priority, bool) {
	value := s.v.GetString(Key(tag))
	if value == "" {
		return 0, false
	}
	p, err := entity.ParsePriority(value)
	if err != nil {
		return 0, false
	}
	return p, true
}
