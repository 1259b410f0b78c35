// Package client is a small Go client for the car-rental API. A Client is a
// plain value carrying its base URL and credential; there is no package-level
// state and no mutation of shared default headers.
package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/KelMarrocos/CarRental/models"
)

type Client struct {
	BaseURL    string
	Token      string
	HTTPClient *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// WithToken returns a copy of the client carrying the credential. The
// receiver is not modified, so one authenticated client per session can
// coexist with the unauthenticated one.
func (c *Client) WithToken(token string) *Client {
	copied := *c
	copied.Token = token
	return &copied
}

// APIError is a success:false response from the server.
type APIError struct {
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (c *Client) do(method, path string, body interface{}, out interface{}) error {
	var reqBody *bytes.Buffer
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewBuffer(buf)
	} else {
		reqBody = &bytes.Buffer{}
	}

	req, err := http.NewRequest(method, c.BaseURL+path, reqBody)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	if !env.Success {
		msg := env.Message
		if msg == "" {
			msg = fmt.Sprintf("request failed with status %d", resp.StatusCode)
		}
		return &APIError{Message: msg}
	}
	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

type sessionResponse struct {
	envelope
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// Register creates an account and returns the session token and user.
func (c *Client) Register(name, email, password string) (string, models.User, error) {
	var resp sessionResponse
	err := c.do(http.MethodPost, "/api/user/register", map[string]string{
		"name": name, "email": email, "password": password,
	}, &resp)
	return resp.Token, resp.User, err
}

// Login exchanges credentials for a session token and user.
func (c *Client) Login(email, password string) (string, models.User, error) {
	var resp sessionResponse
	err := c.do(http.MethodPost, "/api/user/login", map[string]string{
		"email": email, "password": password,
	}, &resp)
	return resp.Token, resp.User, err
}

// CheckAvailability returns the cars free at a location over a date range.
func (c *Client) CheckAvailability(location, pickupDate, returnDate string) ([]models.Car, error) {
	var resp struct {
		envelope
		AvailableCars []models.Car `json:"availableCars"`
	}
	err := c.do(http.MethodPost, "/api/bookings/check-availability", map[string]string{
		"location": location, "pickupDate": pickupDate, "returnDate": returnDate,
	}, &resp)
	return resp.AvailableCars, err
}

// CreateBooking books a car over a date range for the authenticated user.
func (c *Client) CreateBooking(carID, pickupDate, returnDate string) error {
	return c.do(http.MethodPost, "/api/bookings/create", map[string]string{
		"car": carID, "pickupDate": pickupDate, "returnDate": returnDate,
	}, nil)
}

// MyBookings lists the authenticated user's bookings, newest first.
func (c *Client) MyBookings() ([]models.Booking, error) {
	var resp struct {
		envelope
		Bookings []models.Booking `json:"bookings"`
	}
	err := c.do(http.MethodGet, "/api/bookings/user", nil, &resp)
	return resp.Bookings, err
}

// OwnerBookings lists bookings for the cars the authenticated owner lists.
func (c *Client) OwnerBookings() ([]models.Booking, error) {
	var resp struct {
		envelope
		Bookings []models.Booking `json:"bookings"`
	}
	err := c.do(http.MethodGet, "/api/bookings/owner", nil, &resp)
	return resp.Bookings, err
}

// ChangeBookingStatus asks the server to move a booking to a new status.
func (c *Client) ChangeBookingStatus(bookingID string, status models.BookingStatus) error {
	return c.do(http.MethodPost, "/api/bookings/change-status", map[string]string{
		"bookingId": bookingID, "status": string(status),
	}, nil)
}

// ToggleCar flips a car's availability flag.
func (c *Client) ToggleCar(carID string) error {
	return c.do(http.MethodPatch, "/api/owner/car/"+carID+"/toggle", nil, nil)
}
