// Package driver provides the Driver entity: a person with a car who can be
// assigned to a taxi order. Drivers are compared by id only.
package driver
