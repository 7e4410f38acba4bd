package config

import (
	"fmt"
	"os"
	"reflect"
	"strconv"
)

// processStructFields walks the struct and overrides fields from their env tag.
// It returns the names of the variables that were applied.
func processStructFields(s interface{}) ([]string, error) {
	val := reflect.ValueOf(s)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}
	if val.Kind() != reflect.Struct {
		return nil, nil
	}

	var applied []string
	typ := val.Type()
	for i := 0; i < val.NumField(); i++ {
		field := val.Field(i)
		fieldType := typ.Field(i)

		if field.Kind() == reflect.Struct {
			nested, err := processStructFields(field.Addr().Interface())
			if err != nil {
				return nil, err
			}
			applied = append(applied, nested...)
			continue
		}

		envTag := fieldType.Tag.Get("env")
		if envTag == "" {
			continue
		}
		envValue, exists := os.LookupEnv(envTag)
		if !exists {
			continue
		}

		if err := setFieldFromEnv(field, envValue); err != nil {
			return nil, fmt.Errorf("failed to set field %s from env var %s: %w", fieldType.Name, envTag, err)
		}
		applied = append(applied, envTag)
	}

	return applied, nil
}

// setFieldFromEnv sets a string, int or bool field from an environment variable
func setFieldFromEnv(field reflect.Value, value string) error {
	if !field.CanSet() {
		return fmt.Errorf("field cannot be set")
	}

	switch field.Kind() {
	case reflect.String:
		field.SetString(value)
	case reflect.Int, reflect.Int64:
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid integer format: %w", err)
		}
		field.SetInt(n)
	case reflect.Bool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean format: %w", err)
		}
		field.SetBool(b)
	default:
		return fmt.Errorf("unsupported field type: %s", field.Kind())
	}

	return nil
}
