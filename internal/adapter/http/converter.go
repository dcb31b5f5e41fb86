package http

import (
	"fmt"
	"strings"

	"github.com/flight-deals/syria-flight-deals/internal/domain"
)

// currencyUSD is the only currency fares are quoted in.
const currencyUSD = "USD"

// airportLabel is the Arabic display name of a Syrian airport.
type airportLabel struct {
	City string
	Name string
}

var airportLabels = map[string]airportLabel{
	"DAM": {City: "دمشق", Name: "مطار دمشق الدولي"},
	"ALP": {City: "حلب", Name: "مطار حلب الدولي"},
}

// ToFareDTO converts a domain FareRecord to a FareDTO.
func ToFareDTO(r domain.FareRecord) FareDTO {
	dto := FareDTO{
		ID:          r.ID,
		Origin:      r.OriginCode,
		Destination: r.DestinationCode,
		Airline: AirlineDTO{
			Code: r.AirlineCode,
			Name: r.AirlineName,
		},
		FlightNumber:  r.FlightNumber,
		DepartureTime: r.DepartureTime,
		ArrivalTime:   r.ArrivalTime,
		Duration: DurationDTO{
			TotalMinutes: r.DurationMinutes,
			Formatted:    formatDuration(r.DurationMinutes),
		},
		Stops: r.Stops,
		Price: PriceDTO{
			Amount:   r.PriceUSD,
			Currency: currencyUSD,
		},
		BookingToken: r.BookingToken,
		Source:       string(r.Source),
	}
	if len(r.DaysOfWeek) > 0 {
		dto.DaysOfWeek = append([]int(nil), r.DaysOfWeek...)
	}
	return dto
}

// ToFaresResponseDTO converts fare records to a FaresResponseDTO.
func ToFaresResponseDTO(records []domain.FareRecord) FaresResponseDTO {
	return FaresResponseDTO{Total: len(records), Flights: toFareDTOs(records)}
}

func toFareDTOs(records []domain.FareRecord) []FareDTO {
	out := make([]FareDTO, len(records))
	for i, r := range records {
		out[i] = ToFareDTO(r)
	}
	return out
}

// ToAirportSummaryDTO converts a summary. A zero minimum price means no priced fare
// and is sent as null.
func ToAirportSummaryDTO(s domain.AirportSummary) AirportSummaryDTO {
	dto := AirportSummaryDTO{
		AirportCode:      s.AirportCode,
		DestinationCount: s.DestinationCount,
	}
	if s.MinPrice > 0 {
		p := s.MinPrice
		dto.MinPrice = &p
	}
	if label, ok := airportLabels[s.AirportCode]; ok {
		dto.Label = label.City
		dto.AirportName = label.Name
	}
	return dto
}

// ToDealsQuery converts GET /api/v1/flights parameters to a domain query.
func ToDealsQuery(q DatasetSearchQuery, hub string) domain.DealsQuery {
	direction := domain.TripFromHub
	if q.Type == string(domain.TripToHub) {
		direction = domain.TripToHub
	}
	if q.Airport != "" {
		hub = q.Airport
	}
	return domain.DealsQuery{
		Hub:         hub,
		Direction:   direction,
		Counterpart: q.Destination,
		Criteria: domain.FilterCriteria{
			Airlines:   q.Airlines,
			MaxPrice:   q.MaxPrice,
			DirectOnly: q.DirectOnly,
		},
		Sort: domain.ParseSortKey(q.SortBy),
	}
}

// ToLiveSearchParams converts a LiveSearchRequest to live search parameters.
func ToLiveSearchParams(req *LiveSearchRequest) domain.LiveSearchParams {
	params := domain.LiveSearchParams{
		DepartureID:  req.DepartureID,
		ArrivalID:    req.ArrivalID,
		OutboundDate: req.OutboundDate,
		Adults:       req.Adults,
	}
	params.SetDefaults()
	return params
}

// ToFilterCriteria converts a FilterDTO to domain criteria. nil filters nothing.
func ToFilterCriteria(dto *FilterDTO) domain.FilterCriteria {
	if dto == nil {
		return domain.FilterCriteria{}
	}
	return domain.FilterCriteria{
		Airlines:        dto.Airlines,
		MaxPrice:        dto.MaxPrice,
		DirectOnly:      dto.DirectOnly,
		DestinationCode: dto.Destination,
	}
}

// ToBookingOptionsRequest converts a ResolveBookingRequest to the domain request.
func ToBookingOptionsRequest(req *ResolveBookingRequest) domain.BookingOptionsRequest {
	return domain.BookingOptionsRequest{
		BookingToken: strings.TrimSpace(req.BookingToken),
		DepartureID:  req.DepartureID,
		ArrivalID:    req.ArrivalID,
		OutboundDate: req.OutboundDate,
	}
}

// formatDuration renders minutes as "2h 5m".
func formatDuration(minutes int) string {
	if minutes <= 0 {
		return "0m"
	}
	h, m := minutes/60, minutes%60
	switch {
	case h == 0:
		return fmt.Sprintf("%dm", m)
	case m == 0:
		return fmt.Sprintf("%dh", h)
	default:
		return fmt.Sprintf("%dh %dm", h, m)
	}
}
