// Package usecase contains the fare aggregation core and the use cases built on it.
// The core functions are pure: they take fully fetched records and return new slices.
package usecase

import (
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/flight-deals/syria-flight-deals/internal/domain"
)

// normalizer maps one raw record of a given source onto a FareRecord.
// ok=false with a nil error means the row was dropped silently.
type normalizer func(raw domain.RawRecord) (rec domain.FareRecord, ok bool, err *domain.FormatError)

var normalizers = map[domain.Source]normalizer{
	domain.SourceDataset: normalizeDatasetRow,
	domain.SourceLive:    normalizeLiveOffer,
}

// Normalize converts raw records from any source into canonical FareRecords.
//
// Rows without an origin or destination code cannot be placed on a route and are
// dropped without an error. Any other malformed row is dropped and reported as a
// FormatError; the rest of the batch is still converted.
func Normalize(raw []domain.RawRecord) ([]domain.FareRecord, []*domain.FormatError) {
	result := make([]domain.FareRecord, 0, len(raw))
	var rejected []*domain.FormatError

	for i, r := range raw {
		fn, known := normalizers[r.Source]
		if !known {
			rejected = append(rejected, domain.NewFormatError(rawID(r, i), "source", "unknown record source "+string(r.Source)))
			continue
		}

		rec, ok, err := fn(r)
		if err != nil {
			rejected = append(rejected, err)
			continue
		}
		if ok {
			result = append(result, rec)
		}
	}

	return result, rejected
}

func normalizeDatasetRow(raw domain.RawRecord) (domain.FareRecord, bool, *domain.FormatError) {
	row := raw.Dataset
	if row == nil {
		return domain.FareRecord{}, false, domain.NewFormatError("", "dataset", "dataset payload missing")
	}

	var origin, destination string
	if row.Origin != nil {
		origin = normalizeCode(row.Origin.AirportCode)
	}
	if row.Destination != nil {
		destination = normalizeCode(row.Destination.AirportCode)
	}
	if origin == "" || destination == "" {
		return domain.FareRecord{}, false, nil
	}
	if origin == destination {
		return domain.FareRecord{}, false, domain.NewFormatError(row.ID, "destination", "origin and destination are the same airport")
	}

	rec := domain.FareRecord{
		ID:              row.ID,
		OriginCode:      origin,
		DestinationCode: destination,
		FlightNumber:    row.FlightNumber,
		DepartureTime:   row.DepartureTime,
		ArrivalTime:     row.ArrivalTime,
		DurationMinutes: row.DurationMinutes,
		PriceUSD:        copyPrice(row.PriceUSD),
		Stops:           row.Stops,
		DaysOfWeek:      append([]int(nil), row.DaysOfWeek...),
		Source:          domain.SourceDataset,
	}
	if row.Airline != nil {
		rec.AirlineCode = strings.ToUpper(row.Airline.Code)
		rec.AirlineName = row.Airline.Name
	}

	return rec, true, nil
}

func normalizeLiveOffer(raw domain.RawRecord) (domain.FareRecord, bool, *domain.FormatError) {
	offer := raw.Live
	if offer == nil {
		return domain.FareRecord{}, false, domain.NewFormatError("", "live", "live payload missing")
	}
	if len(offer.Flights) == 0 {
		return domain.FareRecord{}, false, domain.NewFormatError(offer.BookingToken, "flights", "offer has no segments")
	}

	first := offer.Flights[0]
	last := offer.Flights[len(offer.Flights)-1]

	origin := normalizeCode(first.DepartureAirport.ID)
	destination := normalizeCode(last.ArrivalAirport.ID)
	if origin == "" || destination == "" {
		return domain.FareRecord{}, false, nil
	}
	if origin == destination {
		return domain.FareRecord{}, false, domain.NewFormatError(offer.BookingToken, "arrival_airport", "origin and destination are the same airport")
	}

	stops := len(offer.Layovers)
	if stops == 0 && len(offer.Flights) > 1 {
		stops = len(offer.Flights) - 1
	}

	duration := offer.TotalDuration
	if duration == 0 {
		for _, seg := range offer.Flights {
			duration += seg.Duration
		}
		for _, l := range offer.Layovers {
			duration += l.Duration
		}
	}

	return domain.FareRecord{
		ID:              uuid.NewString(),
		OriginCode:      origin,
		DestinationCode: destination,
		AirlineCode:     airlineCodeFromFlightNumber(first.FlightNumber),
		AirlineName:     first.Airline,
		FlightNumber:    first.FlightNumber,
		DepartureTime:   clockPart(first.DepartureAirport.Time),
		ArrivalTime:     clockPart(last.ArrivalAirport.Time),
		DurationMinutes: duration,
		PriceUSD:        copyPrice(offer.Price),
		Stops:           stops,
		BookingToken:    offer.BookingToken,
		Source:          domain.SourceLive,
	}, true, nil
}

// airlineCodeFromFlightNumber extracts "RJ" from "RJ 436" or "RJ436".
func airlineCodeFromFlightNumber(flightNumber string) string {
	fn := strings.TrimSpace(flightNumber)
	if i := strings.IndexByte(fn, ' '); i > 0 {
		return strings.ToUpper(fn[:i])
	}
	if len(fn) >= 2 {
		return strings.ToUpper(fn[:2])
	}
	return strings.ToUpper(fn)
}

// clockPart strips the date from upstream "YYYY-MM-DD HH:MM" timestamps.
func clockPart(ts string) string {
	ts = strings.TrimSpace(ts)
	if i := strings.LastIndexByte(ts, ' '); i >= 0 {
		return ts[i+1:]
	}
	return ts
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func copyPrice(p *float64) *float64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func rawID(r domain.RawRecord, index int) string {
	switch {
	case r.Dataset != nil:
		return r.Dataset.ID
	case r.Live != nil:
		return r.Live.BookingToken
	default:
		return "#" + strconv.Itoa(index)
	}
}
