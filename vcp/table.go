package vcp

// TableVersion identifies the revision of Table. It follows the MCCS 2.2a
// code assignments as published by ddcutil's vcpinfo listing.
const TableVersion = "mccs-2.2a+ddcutil-vcpinfo.1"

// Table is the canonical list of known VCP controls, ordered by code.
// It must not be modified.
var Table = []Control{
	{Code: 0x01, Name: "degauss", Readable: false, Writable: true},
	{Code: 0x02, Name: "new-control-value", Readable: true, Writable: true, Values: []Value{
		{0xFF, "no-user-controls-are-present"},
		{0x00, "no-button-active"},
	}},
	{Code: 0x03, Name: "soft-controls", Readable: true, Writable: true, Values: []Value{
		{0x01, "button-1-active"},
		{0x02, "button-2-active"},
		{0x03, "button-3-active"},
		{0x04, "button-4-active"},
		{0x05, "button-5-active"},
		{0x06, "button-6-active"},
		{0x07, "button-7-active"},
	}},
	{Code: 0x04, Name: "restore-factory-defaults", Readable: false, Writable: true},
	{Code: 0x05, Name: "restore-factory-brightness-contrast-defaults", Readable: false, Writable: true},
	{Code: 0x06, Name: "restore-factory-geometry-defaults", Readable: false, Writable: true},
	{Code: 0x08, Name: "restore-color-defaults", Readable: false, Writable: true},
	{Code: 0x0A, Name: "restore-factory-tv-defaults", Readable: false, Writable: true},
	{Code: 0x0B, Name: "color-temperature-increment", Readable: true, Writable: false},
	{Code: 0x0C, Name: "color-temperature-request", Readable: true, Writable: true},
	{Code: 0x0E, Name: "clock", Readable: true, Writable: true},
	{Code: 0x10, Name: "brightness", Readable: true, Writable: true},
	{Code: 0x11, Name: "flesh-tone-enhancement", Readable: true, Writable: true},
	{Code: 0x12, Name: "contrast", Readable: true, Writable: true},
	{Code: 0x13, Name: "backlight-control", Readable: true, Writable: true},
	{Code: 0x14, Name: "select-color-preset", Readable: true, Writable: true, Values: []Value{
		{0x01, "srgb"},
		{0x02, "display-native"},
		{0x03, "4000-k"},
		{0x04, "5000-k"},
		{0x05, "6500-k"},
		{0x06, "7500-k"},
		{0x07, "8200-k"},
		{0x08, "9300-k"},
		{0x09, "10000-k"},
		{0x0A, "11500-k"},
		{0x0B, "user-1"},
		{0x0C, "user-2"},
		{0x0D, "user-3"},
	}},
	{Code: 0x16, Name: "video-gain-red", Readable: true, Writable: true},
	{Code: 0x17, Name: "user-color-vision-compensation", Readable: true, Writable: true},
	{Code: 0x18, Name: "video-gain-green", Readable: true, Writable: true},
	{Code: 0x1A, Name: "video-gain-blue", Readable: true, Writable: true},
	{Code: 0x1C, Name: "focus", Readable: true, Writable: true},
	{Code: 0x1E, Name: "auto-setup", Readable: true, Writable: true, Values: []Value{
		{0x00, "auto-setup-not-active"},
		{0x01, "performing-auto-setup"},
		{0x02, "enable-continuous-periodic-auto-setup"},
	}},
	{Code: 0x1F, Name: "auto-color-setup", Readable: true, Writable: true, Values: []Value{
		{0x00, "auto-setup-not-active"},
		{0x01, "performing-auto-setup"},
		{0x02, "enable-continuous-periodic-auto-setup"},
	}},
	{Code: 0x20, Name: "horizontal-position-phase", Readable: true, Writable: true},
	{Code: 0x22, Name: "horizontal-size", Readable: true, Writable: true},
	{Code: 0x24, Name: "horizontal-pincushion", Readable: true, Writable: true},
	{Code: 0x26, Name: "horizontal-pincushion-balance", Readable: true, Writable: true},
	{Code: 0x28, Name: "horizontal-convergence-r-b", Readable: true, Writable: true},
	{Code: 0x29, Name: "horizontal-convergence-m-g", Readable: true, Writable: true},
	{Code: 0x2A, Name: "horizontal-linearity", Readable: true, Writable: true},
	{Code: 0x2C, Name: "horizontal-linearity-balance", Readable: true, Writable: true},
	{Code: 0x2E, Name: "gray-scale-expansion", Readable: true, Writable: true},
	{Code: 0x30, Name: "vertical-position-phase", Readable: true, Writable: true},
	{Code: 0x32, Name: "vertical-size", Readable: true, Writable: true},
	{Code: 0x34, Name: "vertical-pincushion", Readable: true, Writable: true},
	{Code: 0x36, Name: "vertical-pincushion-balance", Readable: true, Writable: true},
	{Code: 0x38, Name: "vertical-convergence-r-b", Readable: true, Writable: true},
	{Code: 0x39, Name: "vertical-convergence-m-g", Readable: true, Writable: true},
	{Code: 0x3A, Name: "vertical-linearity", Readable: true, Writable: true},
	{Code: 0x3C, Name: "vertical-linearity-balance", Readable: true, Writable: true},
	{Code: 0x3E, Name: "clock-phase", Readable: true, Writable: true},
	{Code: 0x40, Name: "horizontal-parallelogram", Readable: true, Writable: true},
	{Code: 0x41, Name: "vertical-parallelogram", Readable: true, Writable: true},
	{Code: 0x42, Name: "horizontal-keystone", Readable: true, Writable: true},
	{Code: 0x43, Name: "vertical-keystone", Readable: true, Writable: true},
	{Code: 0x44, Name: "rotation", Readable: true, Writable: true},
	{Code: 0x46, Name: "top-corner-flare", Readable: true, Writable: true},
	{Code: 0x48, Name: "top-corner-hook", Readable: true, Writable: true},
	{Code: 0x4A, Name: "bottom-corner-flare", Readable: true, Writable: true},
	{Code: 0x4C, Name: "bottom-corner-hook", Readable: true, Writable: true},
	{Code: 0x52, Name: "active-control", Readable: true, Writable: false},
	{Code: 0x54, Name: "performance-preservation", Readable: true, Writable: true},
	{Code: 0x56, Name: "horizontal-moire", Readable: true, Writable: true},
	{Code: 0x58, Name: "vertical-moire", Readable: true, Writable: true},
	{Code: 0x59, Name: "6-axis-saturation-red", Readable: true, Writable: true},
	{Code: 0x5A, Name: "6-axis-saturation-yellow", Readable: true, Writable: true},
	{Code: 0x5B, Name: "6-axis-saturation-green", Readable: true, Writable: true},
	{Code: 0x5C, Name: "6-axis-saturation-cyan", Readable: true, Writable: true},
	{Code: 0x5D, Name: "6-axis-saturation-blue", Readable: true, Writable: true},
	{Code: 0x5E, Name: "6-axis-saturation-magenta", Readable: true, Writable: true},
	{Code: 0x60, Name: "input-source", Readable: true, Writable: true, Values: []Value{
		{0x01, "vga-1"},
		{0x02, "vga-2"},
		{0x03, "dvi-1"},
		{0x04, "dvi-2"},
		{0x05, "composite-video-1"},
		{0x06, "composite-video-2"},
		{0x07, "s-video-1"},
		{0x08, "s-video-2"},
		{0x09, "tuner-1"},
		{0x0A, "tuner-2"},
		{0x0B, "tuner-3"},
		{0x0C, "component-video-yprpb-ycrcb-1"},
		{0x0D, "component-video-yprpb-ycrcb-2"},
		{0x0E, "component-video-yprpb-ycrcb-3"},
		{0x0F, "displayport-1"},
		{0x10, "displayport-2"},
		{0x11, "hdmi-1"},
		{0x12, "hdmi-2"},
	}},
	{Code: 0x62, Name: "audio-speaker-volume", Readable: true, Writable: true},
	{Code: 0x63, Name: "speaker-select", Readable: true, Writable: true, Values: []Value{
		{0x00, "front-l-r"},
		{0x01, "side-l-r"},
		{0x02, "rear-l-r"},
		{0x03, "center-subwoofer"},
	}},
	{Code: 0x64, Name: "audio-microphone-volume", Readable: true, Writable: true},
	{Code: 0x66, Name: "ambient-light-sensor", Readable: true, Writable: true, Values: []Value{
		{0x01, "disabled"},
		{0x02, "enabled"},
	}},
	{Code: 0x6B, Name: "backlight-level-white", Readable: true, Writable: true},
	{Code: 0x6C, Name: "video-black-level-red", Readable: true, Writable: true},
	{Code: 0x6D, Name: "backlight-level-red", Readable: true, Writable: true},
	{Code: 0x6E, Name: "video-black-level-green", Readable: true, Writable: true},
	{Code: 0x6F, Name: "backlight-level-green", Readable: true, Writable: true},
	{Code: 0x70, Name: "video-black-level-blue", Readable: true, Writable: true},
	{Code: 0x71, Name: "backlight-level-blue", Readable: true, Writable: true},
	{Code: 0x72, Name: "gamma", Readable: true, Writable: true},
	{Code: 0x73, Name: "lut-size", Readable: true, Writable: false},
	{Code: 0x74, Name: "single-point-lut-operation", Readable: true, Writable: true},
	{Code: 0x75, Name: "block-lut-operation", Readable: true, Writable: true},
	{Code: 0x76, Name: "remote-procedure-call", Readable: false, Writable: true},
	{Code: 0x78, Name: "display-identification-operation", Readable: true, Writable: false},
	{Code: 0x7A, Name: "adjust-focal-plane", Readable: true, Writable: true},
	{Code: 0x7C, Name: "adjust-zoom", Readable: true, Writable: true},
	{Code: 0x7E, Name: "trapezoid", Readable: true, Writable: true},
	{Code: 0x80, Name: "keystone", Readable: true, Writable: true},
	{Code: 0x82, Name: "horizontal-mirror-flip", Readable: true, Writable: true, Values: []Value{
		{0x00, "normal-mode"},
		{0x01, "mirrored-horizontally-mode"},
	}},
	{Code: 0x84, Name: "vertical-mirror-flip", Readable: true, Writable: true, Values: []Value{
		{0x00, "normal-mode"},
		{0x01, "mirrored-vertically-mode"},
	}},
	{Code: 0x86, Name: "display-scaling", Readable: true, Writable: true, Values: []Value{
		{0x01, "no-scaling"},
		{0x02, "max-image-no-aspect-ration-distortion"},
		{0x03, "max-vertical-image-no-aspect-ratio-distortion"},
		{0x04, "max-horizontal-image-no-aspect-ratio-distortion"},
		{0x05, "max-vertical-image-with-aspect-ratio-distortion"},
		{0x06, "max-horizontal-image-with-aspect-ratio-distortion"},
		{0x07, "linear-expansion-compression-on-horizontal-axis"},
		{0x08, "linear-expansion-compression-on-h-and-v-axes"},
		{0x09, "squeeze-mode"},
		{0x0A, "non-linear-expansion"},
	}},
	{Code: 0x87, Name: "sharpness", Readable: true, Writable: true, Values: []Value{
		{0x01, "filter-function-1"},
		{0x02, "filter-function-2"},
		{0x03, "filter-function-3"},
		{0x04, "filter-function-4"},
	}},
	{Code: 0x88, Name: "velocity-scan-modulation", Readable: true, Writable: true},
	{Code: 0x8A, Name: "color-saturation", Readable: true, Writable: true},
	{Code: 0x8B, Name: "tv-channel-up-down", Readable: false, Writable: true, Values: []Value{
		{0x01, "increment-channel"},
		{0x02, "decrement-channel"},
	}},
	{Code: 0x8C, Name: "tv-sharpness", Readable: true, Writable: true},
	{Code: 0x8D, Name: "audio-mute-screen-blank", Readable: true, Writable: true, Values: []Value{
		{0x01, "mute-the-audio"},
		{0x02, "unmute-the-audio"},
	}},
	{Code: 0x8E, Name: "tv-contrast", Readable: true, Writable: true},
	{Code: 0x8F, Name: "audio-treble", Readable: true, Writable: true},
	{Code: 0x90, Name: "hue", Readable: true, Writable: true},
	{Code: 0x91, Name: "audio-bass", Readable: true, Writable: true},
	{Code: 0x92, Name: "tv-black-level-luminesence", Readable: true, Writable: true},
	{Code: 0x93, Name: "audio-balance-l-r", Readable: true, Writable: true},
	{Code: 0x94, Name: "audio-processor-mode", Readable: true, Writable: true, Values: []Value{
		{0x00, "speaker-off-audio-not-supported"},
		{0x01, "mono"},
		{0x02, "stereo"},
		{0x03, "stereo-expanded"},
		{0x11, "srs-2.0"},
		{0x12, "srs-2.1"},
		{0x13, "srs-3.1"},
		{0x14, "srs-4.1"},
		{0x15, "srs-5.1"},
		{0x16, "srs-6.1"},
		{0x17, "srs-7.1"},
		{0x21, "dolby-2.0"},
		{0x22, "dolby-2.1"},
		{0x23, "dolby-3.1"},
		{0x24, "dolby-4.1"},
		{0x25, "dolby-5.1"},
		{0x26, "dolby-6.1"},
		{0x27, "dolby-7.1"},
		{0x31, "thx-2.0"},
		{0x32, "thx-2.1"},
		{0x33, "thx-3.1"},
		{0x34, "thx-4.1"},
		{0x35, "thx-5.1"},
		{0x36, "thx-6.1"},
		{0x37, "thx-7.1"},
	}},
	{Code: 0x95, Name: "window-position-tl_x", Readable: true, Writable: true},
	{Code: 0x96, Name: "window-position-tl_y", Readable: true, Writable: true},
	{Code: 0x97, Name: "window-position-br_x", Readable: true, Writable: true},
	{Code: 0x98, Name: "window-position-br_y", Readable: true, Writable: true},
	{Code: 0x99, Name: "window-control-on-off", Readable: true, Writable: true, Values: []Value{
		{0x00, "no-effect"},
		{0x01, "off"},
		{0x02, "on"},
	}},
	{Code: 0x9A, Name: "window-background", Readable: true, Writable: true},
	{Code: 0x9B, Name: "6-axis-hue-control-red", Readable: true, Writable: true},
	{Code: 0x9C, Name: "6-axis-hue-control-yellow", Readable: true, Writable: true},
	{Code: 0x9D, Name: "6-axis-hue-control-green", Readable: true, Writable: true},
	{Code: 0x9E, Name: "6-axis-hue-control-cyan", Readable: true, Writable: true},
	{Code: 0x9F, Name: "6-axis-hue-control-blue", Readable: true, Writable: true},
	{Code: 0xA0, Name: "6-axis-hue-control-magenta", Readable: true, Writable: true},
	{Code: 0xA2, Name: "auto-setup-on-off", Readable: false, Writable: true, Values: []Value{
		{0x01, "off"},
		{0x02, "on"},
	}},
	{Code: 0xA4, Name: "window-mask-control", Readable: true, Writable: true},
	{Code: 0xA5, Name: "change-the-selected-window", Readable: true, Writable: true, Values: []Value{
		{0x00, "full-display-image-area-selected-except-active-windows"},
		{0x01, "window-1-selected"},
		{0x02, "window-2-selected"},
		{0x03, "window-3-selected"},
		{0x04, "window-4-selected"},
		{0x05, "window-5-selected"},
		{0x06, "window-6-selected"},
		{0x07, "window-7-selected"},
	}},
	{Code: 0xAA, Name: "screen-orientation", Readable: true, Writable: false, Values: []Value{
		{0x01, "0-degrees"},
		{0x02, "90-degrees"},
		{0x03, "180-degrees"},
		{0x04, "270-degrees"},
		{0xFF, "display-cannot-supply-orientation"},
	}},
	{Code: 0xAC, Name: "horizontal-frequency", Readable: true, Writable: false},
	{Code: 0xAE, Name: "vertical-frequency", Readable: true, Writable: false},
	{Code: 0xB0, Name: "settings", Readable: false, Writable: true, Values: []Value{
		{0x01, "store-current-settings-in-the-monitor"},
		{0x02, "restore-factory-defaults-for-current-mode"},
	}},
	{Code: 0xB2, Name: "flat-panel-sub-pixel-layout", Readable: true, Writable: false, Values: []Value{
		{0x00, "sub-pixel-layout-not-defined"},
		{0x01, "red-green-blue-vertical-stripe"},
		{0x02, "red-green-blue-horizontal-stripe"},
		{0x03, "blue-green-red-vertical-stripe"},
		{0x04, "blue-green-red-horizontal-stripe"},
		{0x05, "quad-pixel-red-at-top-left"},
		{0x06, "quad-pixel-red-at-bottom-left"},
		{0x07, "delta-triad"},
		{0x08, "mosaic"},
	}},
	{Code: 0xB4, Name: "source-timing-mode", Readable: true, Writable: true},
	{Code: 0xB6, Name: "display-technology-type", Readable: true, Writable: false, Values: []Value{
		{0x01, "crt-shadow-mask"},
		{0x02, "crt-aperture-grill"},
		{0x03, "lcd-active-matrix"},
		{0x04, "lcos"},
		{0x05, "plasma"},
		{0x06, "oled"},
		{0x07, "el"},
		{0x08, "mem"},
	}},
	{Code: 0xB7, Name: "monitor-status", Readable: true, Writable: false},
	{Code: 0xB8, Name: "packet-count", Readable: true, Writable: true},
	{Code: 0xB9, Name: "monitor-x-origin", Readable: true, Writable: true},
	{Code: 0xBA, Name: "monitor-y-origin", Readable: true, Writable: true},
	{Code: 0xBB, Name: "header-error-count", Readable: true, Writable: true},
	{Code: 0xBC, Name: "body-crc-error-count", Readable: true, Writable: true},
	{Code: 0xBD, Name: "client-id", Readable: true, Writable: true},
	{Code: 0xBE, Name: "link-control", Readable: true, Writable: true},
	{Code: 0xC0, Name: "display-usage-time", Readable: true, Writable: false},
	{Code: 0xC2, Name: "display-descriptor-length", Readable: true, Writable: false},
	{Code: 0xC3, Name: "transmit-display-descriptor", Readable: true, Writable: true},
	{Code: 0xC4, Name: "enable-display-of-'display-descriptor'", Readable: true, Writable: true},
	{Code: 0xC6, Name: "application-enable-key", Readable: true, Writable: false},
	{Code: 0xC8, Name: "display-controller-type", Readable: true, Writable: false, Values: []Value{
		{0x01, "conexant"},
		{0x02, "genesis"},
		{0x03, "macronix"},
		{0x04, "idt"},
		{0x05, "mstar"},
		{0x06, "myson"},
		{0x07, "phillips"},
		{0x08, "pixelworks"},
		{0x09, "realtek"},
		{0x0A, "sage"},
		{0x0B, "silicon-image"},
		{0x0C, "smartasic"},
		{0x0D, "stmicroelectronics"},
		{0x0E, "topro"},
		{0x0F, "trumpion"},
		{0x10, "welltrend"},
		{0x11, "samsung"},
		{0x12, "novatek"},
		{0x13, "stk"},
		{0x14, "silicon-optics"},
		{0x15, "texas-instruments"},
		{0x16, "analogix"},
		{0x17, "quantum-data"},
		{0x18, "nxp-semiconductors"},
		{0x19, "chrontel"},
		{0x1A, "parade-technologies"},
		{0x1B, "thine-electronics"},
		{0x1C, "trident"},
		{0x1D, "micros"},
		{0xFF, "not-defined-a-manufacturer-designed-controller"},
	}},
	{Code: 0xC9, Name: "display-firmware-level", Readable: true, Writable: false},
	{Code: 0xCA, Name: "osd-button-control", Readable: true, Writable: true, Values: []Value{
		{0x01, "osd-disabled"},
		{0x02, "osd-enabled"},
		{0xFF, "display-cannot-supply-this-information"},
	}},
	{Code: 0xCC, Name: "osd-language", Readable: true, Writable: true, Values: []Value{
		{0x00, "reserved-value-must-be-ignored"},
		{0x01, "chinese-traditional-hantai"},
		{0x02, "english"},
		{0x03, "french"},
		{0x04, "german"},
		{0x05, "italian"},
		{0x06, "japanese"},
		{0x07, "korean"},
		{0x08, "portuguese-portugal"},
		{0x09, "russian"},
		{0x0A, "spanish"},
		{0x0B, "swedish"},
		{0x0C, "turkish"},
		{0x0D, "chinese-simplified-kantai"},
		{0x0E, "portuguese-brazil"},
		{0x0F, "arabic"},
		{0x10, "bulgarian"},
		{0x11, "croatian"},
		{0x12, "czech"},
		{0x13, "danish"},
		{0x14, "dutch"},
		{0x15, "estonian"},
		{0x16, "finnish"},
		{0x17, "greek"},
		{0x18, "hebrew"},
		{0x19, "hindi"},
		{0x1A, "hungarian"},
		{0x1B, "latvian"},
		{0x1C, "lithuanian"},
		{0x1D, "norwegian"},
		{0x1E, "polish"},
		{0x1F, "romanian"},
		{0x20, "serbian"},
		{0x21, "slovak"},
		{0x22, "slovenian"},
		{0x23, "thai"},
		{0x24, "ukranian"},
		{0x25, "vietnamese"},
	}},
	{Code: 0xCD, Name: "status-indicators", Readable: true, Writable: true},
	{Code: 0xCE, Name: "auxiliary-display-size", Readable: true, Writable: false},
	{Code: 0xCF, Name: "auxiliary-display-data", Readable: false, Writable: true},
	{Code: 0xD0, Name: "output-select", Readable: true, Writable: true, Values: []Value{
		{0x01, "analog-video-r-g-b-1"},
		{0x02, "analog-video-r-g-b-2"},
		{0x03, "digital-video-tdms-1"},
		{0x04, "digital-video-tdms-22"},
		{0x05, "composite-video-1"},
		{0x06, "composite-video-2"},
		{0x07, "s-video-1"},
		{0x08, "s-video-2"},
		{0x09, "tuner-1"},
		{0x0A, "tuner-2"},
		{0x0B, "tuner-3"},
		{0x0C, "component-video-yprpb-ycrcb-1"},
		{0x0D, "component-video-yprpb-ycrcb-2"},
		{0x0E, "component-video-yprpb-ycrcb-3"},
		{0x0F, "displayport-1"},
		{0x10, "displayport-2"},
		{0x11, "hdmi-1"},
		{0x12, "hdmi-2"},
	}},
	{Code: 0xD2, Name: "asset-tag", Readable: true, Writable: true},
	{Code: 0xD4, Name: "stereo-video-mode", Readable: true, Writable: true},
	{Code: 0xD6, Name: "power-mode", Readable: true, Writable: true, Values: []Value{
		{0x01, "dpm-on-dpms-off"},
		{0x02, "dpm-off-dpms-standby"},
		{0x03, "dpm-off-dpms-suspend"},
		{0x04, "dpm-off-dpms-off"},
		{0x05, "write-only-value-to-turn-off-display"},
	}},
	{Code: 0xD7, Name: "auxiliary-power-output", Readable: true, Writable: true, Values: []Value{
		{0x01, "disable-auxiliary-power"},
		{0x02, "enable-auxiliary-power"},
	}},
	{Code: 0xDA, Name: "scan-mode", Readable: true, Writable: true, Values: []Value{
		{0x00, "normal-operation"},
		{0x01, "underscan"},
		{0x02, "overscan"},
		{0x03, "widescreen"},
	}},
	{Code: 0xDB, Name: "image-mode", Readable: true, Writable: true, Values: []Value{
		{0x00, "no-effect"},
		{0x01, "full-mode"},
		{0x02, "zoom-mode"},
		{0x03, "squeeze-mode"},
		{0x04, "variable"},
	}},
	{Code: 0xDC, Name: "display-mode", Readable: true, Writable: true, Values: []Value{
		{0x00, "standard-default-mode"},
		{0x01, "productivity"},
		{0x02, "mixed"},
		{0x03, "movie"},
		{0x04, "user-defined"},
		{0x05, "games"},
		{0x06, "sports"},
		{0x07, "professional-all-signal-processing-disabled"},
		{0x08, "standard-default-mode-with-intermediate-power-consumption"},
		{0x09, "standard-default-mode-with-low-power-consumption"},
		{0x0A, "demonstration"},
		{0xF0, "dynamic-contrast"},
	}},
	{Code: 0xDE, Name: "scratch-pad", Readable: true, Writable: true},
	{Code: 0xDF, Name: "vcp-version", Readable: true, Writable: false},
}
