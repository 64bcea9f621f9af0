package qos

import (
	"bytes"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// ProfileOverrides is a declarative set of per-field QoS overrides,
// typically parsed from a node's YAML parameter file. Nil fields leave the
// base profile untouched. Policy fields use short keys; duration fields use
// Go duration strings ("100ms", "2s").
type ProfileOverrides struct {
	History                      *HistoryPolicy     `yaml:"history"`
	Depth                        *int               `yaml:"depth"`
	Reliability                  *ReliabilityPolicy `yaml:"reliability"`
	Durability                   *DurabilityPolicy  `yaml:"durability"`
	Lifespan                     *string            `yaml:"lifespan"`
	Deadline                     *string            `yaml:"deadline"`
	Liveliness                   *LivelinessPolicy  `yaml:"liveliness"`
	LivelinessLeaseDuration      *string            `yaml:"liveliness_lease_duration"`
	AvoidROSNamespaceConventions *bool              `yaml:"avoid_ros_namespace_conventions"`
}

// ParseProfileOverrides decodes overrides from YAML. Unknown keys are
// rejected so typos do not silently leave a policy at its base value.
func ParseProfileOverrides(data []byte) (*ProfileOverrides, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var o ProfileOverrides
	if err := dec.Decode(&o); err != nil {
		return nil, fmt.Errorf("parse qos overrides: %w", err)
	}
	return &o, nil
}

// Apply mutates p through the validated setters, field by field. History is
// applied before depth so the history/depth coupling is re-checked against
// the overridden history.
func (o *ProfileOverrides) Apply(p *Profile) error {
	if o.History != nil {
		if err := p.SetHistory(*o.History); err != nil {
			return err
		}
	}
	if o.Depth != nil {
		if err := p.SetDepth(*o.Depth); err != nil {
			return err
		}
	}
	if o.Reliability != nil {
		if err := p.SetReliability(*o.Reliability); err != nil {
			return err
		}
	}
	if o.Durability != nil {
		if err := p.SetDurability(*o.Durability); err != nil {
			return err
		}
	}
	if o.Lifespan != nil {
		d, err := parseOverrideDuration("lifespan", *o.Lifespan)
		if err != nil {
			return err
		}
		if err := p.SetLifespan(d); err != nil {
			return err
		}
	}
	if o.Deadline != nil {
		d, err := parseOverrideDuration("deadline", *o.Deadline)
		if err != nil {
			return err
		}
		if err := p.SetDeadline(d); err != nil {
			return err
		}
	}
	if o.Liveliness != nil {
		if err := p.SetLiveliness(*o.Liveliness); err != nil {
			return err
		}
	}
	if o.LivelinessLeaseDuration != nil {
		d, err := parseOverrideDuration("liveliness_lease_duration", *o.LivelinessLeaseDuration)
		if err != nil {
			return err
		}
		if err := p.SetLivelinessLeaseDuration(d); err != nil {
			return err
		}
	}
	if o.AvoidROSNamespaceConventions != nil {
		p.SetAvoidROSNamespaceConventions(*o.AvoidROSNamespaceConventions)
	}
	return nil
}

// ProfileWithOverrides returns a copy of base with the overrides applied.
func ProfileWithOverrides(base *Profile, o *ProfileOverrides) (*Profile, error) {
	p := base.Clone()
	if o == nil {
		return p, nil
	}
	if err := o.Apply(p); err != nil {
		return nil, err
	}
	return p, nil
}

// yaml.v3 does not consult encoding.TextUnmarshaler, so the policy types
// decode their short keys through yaml.Unmarshaler here.

// UnmarshalYAML decodes a history short key.
func (p *HistoryPolicy) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	return p.UnmarshalText([]byte(s))
}

// UnmarshalYAML decodes a reliability short key.
func (p *ReliabilityPolicy) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	return p.UnmarshalText([]byte(s))
}

// UnmarshalYAML decodes a durability short key.
func (p *DurabilityPolicy) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	return p.UnmarshalText([]byte(s))
}

// UnmarshalYAML decodes a liveliness short key.
func (p *LivelinessPolicy) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	return p.UnmarshalText([]byte(s))
}

func parseOverrideDuration(field, value string) (time.Duration, error) {
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q is not a valid duration", ErrInvalidArgument, field, value)
	}
	return d, nil
}
