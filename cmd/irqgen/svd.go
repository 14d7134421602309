package main

import (
	"encoding/xml"
	"io"
	"strconv"
	"strings"

	"golang.org/x/xerrors"
)

// Integer is an SVD scaledNonNegativeInteger: decimal or 0x-prefixed hex.
type Integer uint64

func (h *Integer) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	var v string
	if err := d.DecodeElement(&v, &start); err != nil {
		return err
	}
	v = strings.TrimSpace(v)

	var value uint64
	var err error
	if s := strings.TrimPrefix(strings.ToLower(v), "0x"); s != strings.ToLower(v) {
		value, err = strconv.ParseUint(s, 16, 64)
	} else {
		value, err = strconv.ParseUint(v, 10, 64)
	}
	if err != nil {
		return xerrors.Errorf("svd: bad integer %q: %w", v, err)
	}
	*h = Integer(value)
	return nil
}

type Device struct {
	Name        string       `xml:"name"`
	Series      string       `xml:"series"`
	CPU         CPU          `xml:"cpu"`
	Peripherals []Peripheral `xml:"peripherals>peripheral"`
}

type CPU struct {
	Name             string  `xml:"name"`
	NVICPriorityBits Integer `xml:"nvicPrioBits"`
}

type Peripheral struct {
	Name        string      `xml:"name"`
	DerivedFrom string      `xml:"derivedFrom,attr"`
	Interrupts  []Interrupt `xml:"interrupt"`
}

type Interrupt struct {
	Name        string  `xml:"name"`
	Description string  `xml:"description"`
	Value       Integer `xml:"value"`
}

func decodeDevice(r io.Reader) (*Device, error) {
	var dev Device
	if err := xml.NewDecoder(r).Decode(&dev); err != nil {
		return nil, xerrors.Errorf("svd decode: %w", err)
	}
	return &dev, nil
}
